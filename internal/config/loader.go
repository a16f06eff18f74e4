// internal/config/loader.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrInvalidConfig — конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("invalid config")

// Load читает JSON-файл поверх значений по умолчанию.
// Пустой путь означает конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Loaded config from %s (%d headlines)", path, len(cfg.Headlines))
	return cfg, nil
}

// ApplyEnv подставляет путь к шрифту из переменной окружения, если она задана.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(FontEnvVar); v != "" {
		c.FontPath = v
	}
}

// Validate проверяет размеры окна, кегли и шаг строк.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.FontPath == "" {
		return fmt.Errorf("%w: empty font path", ErrInvalidConfig)
	}
	for i, h := range c.Headlines {
		if h.Size <= 0 {
			return fmt.Errorf("%w: headline %d font size %d", ErrInvalidConfig, i, h.Size)
		}
	}
	if c.Banner.Size <= 0 || c.Banner.Spacing <= 0 {
		return fmt.Errorf("%w: banner size %d spacing %d", ErrInvalidConfig, c.Banner.Size, c.Banner.Spacing)
	}
	if c.InputGrace < 0 {
		return fmt.Errorf("%w: negative input grace %v", ErrInvalidConfig, c.InputGrace)
	}
	return nil
}
