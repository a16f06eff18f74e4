package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-text-banner/internal/banner"
	"go-text-banner/internal/compositor"
	"go-text-banner/internal/config"
	"go-text-banner/internal/event"
	"go-text-banner/internal/surface"
	"go-text-banner/internal/typeface"
	"go-text-banner/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON configuration file")
	fontPath := flag.String("font", "", "Path to TTF font")
	flag.Parse()

	if err := run(*configPath, *fontPath); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func run(configPath, fontPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)
	if fontPath != "" {
		cfg.FontPath = fontPath
	}

	session, err := typeface.NewSession(cfg.FontPath, typeface.WithBold(cfg.Bold))
	if err != nil {
		return err
	}
	frame, err := render.ComposeFrame(cfg, compositor.SessionRasterizer{Session: session}, banner.Info())
	session.Close()
	if err != nil {
		return fmt.Errorf("compose frame with %s: %w", cfg.FontPath, err)
	}

	present(cfg, frame)
	return nil
}

// present показывает кадр в окне Raylib, масштабируя его под размер окна,
// и ждёт закрытия окна, клавиши или клика.
func present(cfg *config.Config, frame *surface.Surface) {
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), cfg.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.PollTPS)

	img := rl.NewImageFromImage(frame.Image())
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	scale := float32(cfg.WindowWidth) / float32(cfg.ScreenWidth)

	dispatcher := event.NewDispatcher()
	quit := &event.Latch{}
	dispatcher.Subscribe(quit, event.QuitEvents...)
	guard := event.NewGuard(cfg.InputGrace)

	// --- Главный цикл ---
	for !quit.Fired() {
		if rl.WindowShouldClose() {
			dispatcher.Dispatch(event.Event{Type: event.WindowClosing})
		}
		if guard.Advance(float64(rl.GetFrameTime())) {
			if key := rl.GetKeyPressed(); key != 0 {
				dispatcher.Dispatch(event.Event{Type: event.KeyPressed, Data: key})
			}
			if rl.IsMouseButtonPressed(rl.MouseLeftButton) || rl.IsMouseButtonPressed(rl.MouseRightButton) {
				dispatcher.Dispatch(event.Event{Type: event.MouseButtonPressed})
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(color(cfg.Background))
		rl.DrawTextureEx(texture, rl.NewVector2(0, 0), 0, scale, rl.White)
		rl.EndDrawing()
	}
}

// color преобразует config.Color в rl.Color
func color(c config.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
