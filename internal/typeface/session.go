// internal/typeface/session.go
package typeface

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const defaultDPI = 72

// Session — явная область жизни растеризатора.
// Создаётся вызывающим кодом и закрывается им же, глобального состояния нет.
type Session struct {
	path    string
	bold    bool
	dpi     float64
	hinting font.Hinting
	closed  bool
}

// Option настраивает Session
type Option func(*Session)

// WithBold включает эмуляцию полужирного начертания (двойной удар со сдвигом в 1px).
func WithBold(bold bool) Option {
	return func(s *Session) { s.bold = bold }
}

// WithDPI задаёт разрешение, по умолчанию 72.
func WithDPI(dpi float64) Option {
	return func(s *Session) {
		if dpi > 0 {
			s.dpi = dpi
		}
	}
}

// WithHinting задаёт хинтинг глифов.
func WithHinting(h font.Hinting) Option {
	return func(s *Session) { s.hinting = h }
}

// NewSession создаёт сессию для шрифта по указанному пути.
// Файл здесь не читается: он открывается заново при каждом Open.
func NewSession(path string, opts ...Option) (*Session, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty font path", ErrResourceUnavailable)
	}
	s := &Session{
		path:    path,
		dpi:     defaultDPI,
		hinting: font.HintingFull,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path возвращает путь к файлу шрифта
func (s *Session) Path() string {
	return s.path
}

// Open читает и разбирает файл шрифта и создаёт Face нужного кегля.
// Вызывающий обязан закрыть Face после использования.
func (s *Session) Open(size int) (*Face, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: font size %d", ErrRasterize, size)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrResourceUnavailable, s.path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     s.dpi,
		Hinting: s.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: face %s@%d: %w", ErrResourceUnavailable, s.path, size, err)
	}

	return &Face{face: face, size: size, bold: s.bold}, nil
}

// Close завершает сессию. Повторный вызов ничего не делает.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	log.Printf("Font session for %s closed", s.path)
	return nil
}
