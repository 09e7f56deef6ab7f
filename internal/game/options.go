package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/fairdice/internal/fairness"
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	source   fairness.Source
	recorder Recorder
	logger   *log.Logger
}

// WithSource replaces the crypto/rand source. Only tests should need this.
func WithSource(src fairness.Source) SessionOption {
	return func(c *sessionConfig) {
		c.source = src
	}
}

// WithRecorder attaches an observer for every disclosed exchange.
func WithRecorder(r Recorder) SessionOption {
	return func(c *sessionConfig) {
		c.recorder = r
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = l
	}
}

func defaultSessionConfig() *sessionConfig {
	return &sessionConfig{
		source:   fairness.CryptoSource{},
		recorder: nopRecorder{},
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
}
