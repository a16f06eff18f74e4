// internal/compositor/compositor.go
package compositor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"go-text-banner/internal/typeface"
)

// ErrInvalidOptions — неверный кегль или межстрочный шаг
var ErrInvalidOptions = errors.New("compositor: invalid options")

// Target — поверхность, на которую копируются строки (с молчаливым отсечением).
type Target interface {
	Blit(src image.Image, at image.Point)
}

// Face — открытый шрифт, живёт ровно одну строку.
type Face interface {
	RenderShaded(text string, fg, bg color.Color) (*typeface.GlyphRun, error)
	Close() error
}

// Rasterizer открывает шрифт нужного кегля.
type Rasterizer interface {
	OpenFace(size int) (Face, error)
}

// SessionRasterizer адаптирует typeface.Session к Rasterizer
type SessionRasterizer struct {
	Session *typeface.Session
}

func (r SessionRasterizer) OpenFace(size int) (Face, error) {
	face, err := r.Session.Open(size)
	if err != nil {
		return nil, err
	}
	return face, nil
}

// Options — параметры вывода блока строк
type Options struct {
	Size       int // кегль
	X, Y       int // позиция первой строки
	Spacing    int // шаг по вертикали между строками
	Foreground color.Color
	Background color.Color
}

func (o Options) validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("%w: font size %d", ErrInvalidOptions, o.Size)
	}
	if o.Spacing <= 0 {
		return fmt.Errorf("%w: line spacing %d", ErrInvalidOptions, o.Spacing)
	}
	return nil
}

// LinePosition — точка вывода i-й строки: (X, Y + i*Spacing).
func (o Options) LinePosition(i int) image.Point {
	return image.Pt(o.X, o.Y+i*o.Spacing)
}

// RenderLines выводит строки одну под другой в порядке следования.
// Для каждой строки шрифт открывается заново и закрывается сразу после копирования.
// Ошибка растеризатора прерывает проход: вызывающий код считает её фатальной.
func RenderLines(dst Target, r Rasterizer, lines []string, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	for i, line := range lines {
		if err := renderLine(dst, r, line, opts.LinePosition(i), opts); err != nil {
			return fmt.Errorf("line %d %q: %w", i, line, err)
		}
	}
	return nil
}

// DrawText выводит одну строку в точке (X, Y).
func DrawText(dst Target, r Rasterizer, text string, opts Options) error {
	if opts.Spacing == 0 {
		opts.Spacing = 1
	}
	return RenderLines(dst, r, []string{text}, opts)
}

func renderLine(dst Target, r Rasterizer, text string, at image.Point, opts Options) error {
	face, err := r.OpenFace(opts.Size)
	if err != nil {
		return err
	}
	defer func() {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: failed to close face (size %d): %v", opts.Size, err)
		}
	}()

	run, err := face.RenderShaded(text, opts.Foreground, opts.Background)
	if err != nil {
		return err
	}
	defer run.Release()

	dst.Blit(run.Image, at)
	return nil
}
