package postoffice

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/ponyexpress/pkg/config"
	"github.com/dmitrymomot/ponyexpress/pkg/logger"
)

// Config describes a PostOffice loaded from the environment.
//
//	POSTOFFICE_NAME=default
//	POSTOFFICE_LOG_LEVEL=info
//	POSTOFFICE_LOG_FORMAT=json
type Config struct {
	Name   string        `env:"POSTOFFICE_NAME" envDefault:"default"`
	Logger logger.Config `envPrefix:"POSTOFFICE_"`
}

// NewFromConfig creates a PostOffice from cfg. Options are applied after the
// configuration, so they take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*PostOffice, error) {
	log, err := logger.NewFromConfig(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("postoffice: %w", err)
	}
	base := []Option{WithName(cfg.Name), WithLogger(log)}
	return New(append(base, opts...)...), nil
}

var defaultPostOffice = sync.OnceValue(func() *PostOffice {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		slog.Default().Warn("postoffice: using defaults", logger.Error(err))
		return New(WithName("default"))
	}
	p, err := NewFromConfig(cfg)
	if err != nil {
		slog.Default().Warn("postoffice: using defaults", logger.Error(err))
		return New(WithName("default"))
	}
	return p
})

// Default returns the process-wide PostOffice, creating it from the
// environment on first use. Independent post offices can still be created
// with New.
func Default() *PostOffice {
	return defaultPostOffice()
}
