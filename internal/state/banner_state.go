// internal/state/banner_state.go
package state

import (
	"go-text-banner/internal/event"
	"go-text-banner/internal/surface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*BannerState)(nil)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// BannerState — показывает готовый кадр и ждёт любой клавиши или клика.
type BannerState struct {
	frame      *surface.Surface
	image      *ebiten.Image
	guard      *event.Guard
	dispatcher *event.Dispatcher
	keys       []ebiten.Key
}

func NewBannerState(frame *surface.Surface, grace float64, dispatcher *event.Dispatcher) *BannerState {
	return &BannerState{
		frame:      frame,
		guard:      event.NewGuard(grace),
		dispatcher: dispatcher,
	}
}

func (s *BannerState) Enter() {
	// Кадр загружается в текстуру при первой отрисовке
}

func (s *BannerState) Update(deltaTime float64) {
	// Ввод в первую секунду игнорируется
	if !s.guard.Advance(deltaTime) {
		return
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.dispatcher.Dispatch(event.Event{Type: event.KeyPressed, Data: k})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			s.dispatcher.Dispatch(event.Event{Type: event.MouseButtonPressed, Data: b})
		}
	}
}

func (s *BannerState) Draw(screen *ebiten.Image) {
	if s.image == nil {
		s.image = ebiten.NewImageFromImage(s.frame.Image())
	}
	screen.DrawImage(s.image, nil)
}

func (s *BannerState) Exit() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
}
