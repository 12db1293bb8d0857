package machine

import (
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// DefaultBlank is the blank symbol used when WithBlank is not given.
const DefaultBlank = "~"

// Option defines a functional option for configuring a Machine.
type Option func(*Machine)

// WithBlank sets the blank symbol. It is always added to the alphabet.
func WithBlank(blank string) Option {
	return func(m *Machine) {
		m.blank = blank
	}
}

// WithLogger sets a structured logger. Mutations are logged at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithHooks registers observability hooks. It can be passed more than once.
func WithHooks(hooks domain.RegistryHooks) Option {
	return func(m *Machine) {
		m.hooks = m.hooks.Merge(hooks)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
