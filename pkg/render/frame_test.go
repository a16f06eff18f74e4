package render

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"go-text-banner/internal/compositor"
	"go-text-banner/internal/config"
	"go-text-banner/internal/typeface"

	"golang.org/x/image/font/gofont/goregular"
)

const bannerText = "SDL version  : 1.2.3\nSDL linker   : 1.2.4\n"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.FontPath = path
	return cfg
}

func rasterizer(t *testing.T, cfg *config.Config) compositor.Rasterizer {
	t.Helper()
	s, err := typeface.NewSession(cfg.FontPath, typeface.WithBold(cfg.Bold))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return compositor.SessionRasterizer{Session: s}
}

func TestComposeFrame(t *testing.T) {
	cfg := testConfig(t)
	frame, err := ComposeFrame(cfg, rasterizer(t, cfg), bannerText)
	if err != nil {
		t.Fatalf("ComposeFrame() error = %v", err)
	}
	if got := frame.Bounds().Size(); got.X != cfg.ScreenWidth || got.Y != cfg.ScreenHeight {
		t.Errorf("frame size = %v", got)
	}

	img := frame.Image()
	bg := color.RGBA(cfg.Background)
	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("untouched pixel = %v, want %v", got, bg)
	}

	// Левый верхний угол каждого текстового блока закрашен фоном строки.
	for i, h := range cfg.Headlines {
		if got, want := img.RGBAAt(h.X, h.Y), color.RGBA(h.Background); got != want {
			t.Errorf("headline %d corner = %v, want %v", i, got, want)
		}
	}
	for i := 0; i < 2; i++ {
		y := cfg.Banner.Y + i*cfg.Banner.Spacing
		if got, want := img.RGBAAt(cfg.Banner.X, y), color.RGBA(cfg.Banner.Background); got != want {
			t.Errorf("banner line %d corner = %v, want %v", i, got, want)
		}
	}
	// Пустой хвост после последнего '\n' ничего не рисует.
	y := cfg.Banner.Y + 2*cfg.Banner.Spacing
	if got := img.RGBAAt(cfg.Banner.X, y); got != bg {
		t.Errorf("trailing empty line pixel = %v, want background %v", got, bg)
	}
}

func TestComposeFrameDeterministic(t *testing.T) {
	cfg := testConfig(t)
	r := rasterizer(t, cfg)
	a, err := ComposeFrame(cfg, r, bannerText)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComposeFrame(cfg, r, bannerText)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("identical frames differ")
	}
}

func TestComposeFrameMissingFont(t *testing.T) {
	cfg := config.Default()
	cfg.FontPath = filepath.Join(t.TempDir(), "absent.ttf")
	_, err := ComposeFrame(cfg, rasterizer(t, cfg), bannerText)
	if !errors.Is(err, typeface.ErrResourceUnavailable) {
		t.Errorf("ComposeFrame() error = %v, want ErrResourceUnavailable", err)
	}
}

func TestTextColorsOptions(t *testing.T) {
	c := TextColors{Foreground: color.White, Background: color.Black}
	o := c.Options(12, 1, 2, 16)
	if o.Size != 12 || o.X != 1 || o.Y != 2 || o.Spacing != 16 {
		t.Errorf("Options() = %+v", o)
	}
	if o.Foreground != color.White || o.Background != color.Black {
		t.Errorf("Options() colors = %v/%v", o.Foreground, o.Background)
	}
}
