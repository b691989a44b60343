package logger

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/ponyexpress/pkg/environment"
)

// Config holds environment-driven logger settings.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME"`
}

// NewFromConfig builds a logger from cfg. Explicit options are applied after
// the configured ones and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	format := Format(cfg.Format)
	switch format {
	case FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidFormat, cfg.Format)
	}

	base := []Option{
		WithEnvironment(environment.Parse(cfg.Env), cfg.Service),
		WithLevel(level),
		WithFormat(format),
	}
	return New(append(base, opts...)...), nil
}
