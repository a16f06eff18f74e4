// cmd/banner/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-text-banner/internal/banner"
	"go-text-banner/internal/compositor"
	"go-text-banner/internal/config"
	"go-text-banner/internal/event"
	"go-text-banner/internal/state"
	"go-text-banner/internal/surface"
	"go-text-banner/internal/typeface"
	"go-text-banner/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type options struct {
	configPath   string
	fontPath     string
	snapshotPath string
	bold         bool
}

type AppGame struct {
	stateMachine   *state.StateMachine
	dispatcher     *event.Dispatcher
	quit           *event.Latch
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.dispatcher.Dispatch(event.Event{Type: event.WindowClosing})
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)

	if a.quit.Fired() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	if err := run(parseFlags()); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to JSON configuration file")
	flag.StringVar(&opts.fontPath, "font", "", "Path to TTF font (overrides config and $"+config.FontEnvVar+")")
	flag.StringVar(&opts.snapshotPath, "snapshot", "", "Write the composed frame to a PNG file and exit")
	flag.BoolVar(&opts.bold, "bold", true, "Emulate bold font style")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: banner [options]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)
	if opts.fontPath != "" {
		cfg.FontPath = opts.fontPath
	}
	cfg.Bold = cfg.Bold && opts.bold

	frame, err := composeFrame(cfg)
	if err != nil {
		return err
	}

	if opts.snapshotPath != "" {
		return writeSnapshot(frame, opts.snapshotPath)
	}
	return runWindow(cfg, frame)
}

// composeFrame рисует кадр в отдельной сессии шрифта, которая закрывается
// до открытия окна.
func composeFrame(cfg *config.Config) (*surface.Surface, error) {
	session, err := typeface.NewSession(cfg.FontPath, typeface.WithBold(cfg.Bold))
	if err != nil {
		return nil, err
	}
	defer session.Close()

	frame, err := render.ComposeFrame(cfg, compositor.SessionRasterizer{Session: session}, banner.Info())
	if err != nil {
		return nil, fmt.Errorf("compose frame with %s: %w", cfg.FontPath, err)
	}
	return frame, nil
}

func writeSnapshot(frame *surface.Surface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := frame.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	log.Printf("Snapshot written to %s", path)
	return nil
}

func runWindow(cfg *config.Config, frame *surface.Surface) error {
	dispatcher := event.NewDispatcher()
	quit := &event.Latch{}
	dispatcher.Subscribe(quit, event.QuitEvents...)

	sm := state.NewStateMachine()
	defer sm.Close()
	sm.SetState(state.NewBannerState(frame, cfg.InputGrace, dispatcher))

	app := &AppGame{
		stateMachine:   sm,
		dispatcher:     dispatcher,
		quit:           quit,
		width:          cfg.ScreenWidth,
		height:         cfg.ScreenHeight,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.PollTPS)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
