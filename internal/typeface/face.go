// internal/typeface/face.go
package typeface

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Face — открытый шрифт определённого кегля
type Face struct {
	face   font.Face
	size   int
	bold   bool
	closed bool
}

// Size возвращает кегль
func (f *Face) Size() int {
	return f.size
}

// LineHeight — высота строки (ascent + descent) в пикселях.
func (f *Face) LineHeight() int {
	m := f.face.Metrics()
	return m.Ascent.Ceil() + m.Descent.Ceil()
}

// RenderShaded растеризует строку со сглаживанием: глифы цвета fg поверх
// прямоугольника цвета bg. Альфа-канал цветов игнорируется.
func (f *Face) RenderShaded(text string, fg, bg color.Color) (*GlyphRun, error) {
	if f.closed {
		return nil, fmt.Errorf("%w: face closed", ErrRasterize)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: invalid UTF-8 in %q", ErrRasterize, text)
	}
	text = norm.NFC.String(text)

	m := f.face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()

	width := font.MeasureString(f.face, text).Ceil()
	if f.bold && width > 0 {
		width++
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opaque(bg)), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opaque(fg)),
		Face: f.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)
	if f.bold {
		d.Dot = fixed.P(1, ascent)
		d.DrawString(text)
	}

	return &GlyphRun{Image: img}, nil
}

// Close освобождает шрифт
func (f *Face) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.face.Close()
}

// opaque отбрасывает прозрачность: используются только каналы RGB.
func opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}
