package app

import (
	"log/slog"

	"github.com/thenoetrevino/planner/internal/metrics"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// WithMetrics shares an existing counter set with the application
func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *appConfig) {
		cfg.metrics = m
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
