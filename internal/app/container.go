package app

import (
	"context"
	"fmt"

	"github.com/ochronus/gogofile/internal/config"
	"github.com/ochronus/gogofile/internal/services/gofile"
	"github.com/sirupsen/logrus"
)

// Container centralizes the core dependencies used across the application.
// It is intentionally small and uses interfaces so callers (and tests) can
// substitute implementations easily.
type Container struct {
	Config        *config.Config
	Logger        *logrus.Logger
	Gofile        gofile.ClientAPI
	ValidateToken bool
}

// Option allows customizing the container during construction.
type Option func(*Container) error

// WithLogger overrides the default logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Container) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithGofileClient overrides the default Gofile client.
func WithGofileClient(client gofile.ClientAPI) Option {
	return func(c *Container) error {
		if client == nil {
			return fmt.Errorf("gofile client cannot be nil")
		}
		c.Gofile = client
		return nil
	}
}

// WithTokenValidation enables or disables API token validation (default: enabled
// whenever a token is configured).
func WithTokenValidation(validate bool) Option {
	return func(c *Container) error {
		c.ValidateToken = validate
		return nil
	}
}

// NewContainer builds a Container with sensible defaults derived from cfg.
// Options can be supplied to override specific dependencies (useful in tests).
func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	container := &Container{
		Config:        cfg,
		Logger:        buildDefaultLogger(cfg.Loglevel),
		ValidateToken: cfg.Gofile.APIToken != "",
	}

	// Apply options early so tests can inject mocks before defaults are created.
	for _, opt := range opts {
		if err := opt(container); err != nil {
			return nil, err
		}
	}

	if container.Gofile == nil {
		container.Gofile = gofile.NewClient(cfg.Gofile.APIToken, cfg.ClientOptions()...)
	}

	if container.ValidateToken {
		if _, err := container.Gofile.GetAccountID(ctx); err != nil {
			return nil, fmt.Errorf("failed to verify Gofile API token: %w", err)
		}
	}

	return container, nil
}

func buildDefaultLogger(levelStr string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
