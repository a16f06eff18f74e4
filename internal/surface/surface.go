// internal/surface/surface.go
package surface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Surface — изменяемый пиксельный буфер, на который копируется растеризованный текст.
type Surface struct {
	img *image.RGBA
}

// New создаёт поверхность w×h. При неположительных размерах поверхность пуста,
// и любые операции над ней ничего не делают.
func New(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Bounds возвращает границы поверхности
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Image отдаёт пиксели для вывода на экран
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Fill заливает всю поверхность цветом
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Blit копирует src так, чтобы его левый верхний угол оказался в точке at.
// Всё, что выходит за границы поверхности, просто не рисуется.
func (s *Surface) Blit(src image.Image, at image.Point) {
	if src == nil {
		return
	}
	sr := src.Bounds()
	draw.Copy(s.img, at, src, sr, draw.Src, nil)
}

// Clone возвращает независимую копию
func (s *Surface) Clone() *Surface {
	img := image.NewRGBA(s.img.Bounds())
	copy(img.Pix, s.img.Pix)
	return &Surface{img: img}
}

// Equal сравнивает поверхности попиксельно
func (s *Surface) Equal(other *Surface) bool {
	if other == nil {
		return false
	}
	return s.img.Bounds() == other.img.Bounds() && bytes.Equal(s.img.Pix, other.img.Pix)
}

// WritePNG сохраняет снимок поверхности
func (s *Surface) WritePNG(w io.Writer) error {
	if s.img.Bounds().Empty() {
		return fmt.Errorf("surface: cannot encode empty surface")
	}
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("surface: encode png: %w", err)
	}
	return nil
}
