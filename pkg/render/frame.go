package render

import (
	"fmt"

	"go-text-banner/internal/compositor"
	"go-text-banner/internal/config"
	"go-text-banner/internal/surface"
	"go-text-banner/internal/textblock"
)

// ComposeFrame рисует весь кадр демки: серый фон, строки заголовка
// и баннер версий, по строке под строкой.
func ComposeFrame(cfg *config.Config, r compositor.Rasterizer, bannerText string) (*surface.Surface, error) {
	frame := surface.New(cfg.ScreenWidth, cfg.ScreenHeight)
	frame.Fill(cfg.Background)

	for i, h := range cfg.Headlines {
		colors := TextColors{Foreground: h.Foreground, Background: h.Background}
		if err := compositor.DrawText(frame, r, h.Text, colors.Options(h.Size, h.X, h.Y, 0)); err != nil {
			return nil, fmt.Errorf("headline %d: %w", i, err)
		}
	}

	b := cfg.Banner
	colors := TextColors{Foreground: b.Foreground, Background: b.Background}
	lines := textblock.Split(bannerText)
	if err := compositor.RenderLines(frame, r, lines, colors.Options(b.Size, b.X, b.Y, b.Spacing)); err != nil {
		return nil, fmt.Errorf("banner: %w", err)
	}
	return frame, nil
}
