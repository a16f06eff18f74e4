package typeface

import "image"

// GlyphRun — результат растеризации одной строки.
// Границы изображения всегда начинаются в (0, 0).
type GlyphRun struct {
	Image *image.RGBA
}

// Width — ширина в пикселях
func (g *GlyphRun) Width() int {
	if g == nil || g.Image == nil {
		return 0
	}
	return g.Image.Bounds().Dx()
}

// Height — высота в пикселях
func (g *GlyphRun) Height() int {
	if g == nil || g.Image == nil {
		return 0
	}
	return g.Image.Bounds().Dy()
}

// Release отпускает пиксельный буфер; после вызова GlyphRun пуст.
func (g *GlyphRun) Release() {
	if g != nil {
		g.Image = nil
	}
}
