package render

import (
	"image/color"

	"go-text-banner/internal/compositor"
)

// TextColors holds the ink and shading colors of one text element.
type TextColors struct {
	Foreground color.Color
	Background color.Color
}

// Options builds compositor options for this color pair.
func (c TextColors) Options(size, x, y, spacing int) compositor.Options {
	return compositor.Options{
		Size:       size,
		X:          x,
		Y:          y,
		Spacing:    spacing,
		Foreground: c.Foreground,
		Background: c.Background,
	}
}
