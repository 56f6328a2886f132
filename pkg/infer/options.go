package infer

import (
	"log/slog"

	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/pkg/values"
)

// AdapterFunc turns a value the engine does not otherwise recognize into a
// name→value mapping, or reports false. The default is values.Fields, which
// reads structs; callers with opaque record types can supply their own.
type AdapterFunc func(value any) (map[string]any, bool)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger configures the structured logger. The default discards
// everything; classification decisions are traced at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDebugLogging traces classification decisions to stderr at the given
// level, without requiring the caller to wire a logger.
func WithDebugLogging(level slog.Level) Option {
	return func(e *Engine) {
		e.logger = logging.New(level)
	}
}

// WithAdapter configures the attribute-bag adapter.
func WithAdapter(adapter AdapterFunc) Option {
	return func(e *Engine) {
		if adapter != nil {
			e.adapter = adapter
		}
	}
}

var _ AdapterFunc = values.Fields
