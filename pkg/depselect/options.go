package depselect

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Dispatcher posts a UI mutation onto the thread that owns the controls.
type Dispatcher func(fn func())

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the diagnostic logger used for lookup failures.
func WithLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithMessages overrides the placeholder strings. Empty fields fall back to
// DefaultMessages.
func WithMessages(messages Messages) ControllerOption {
	return func(c *Controller) {
		c.messages = messages.withDefaults()
	}
}

// WithDispatcher routes every write to the dependent control through fn.
// The default dispatcher runs writes inline, serialized by a mutex.
func WithDispatcher(fn Dispatcher) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.dispatch = fn
		}
	}
}

// WithLatestOnly toggles the request sequence guard. When enabled (the
// default) a completed lookup only renders if no newer change was issued.
func WithLatestOnly(enabled bool) ControllerOption {
	return func(c *Controller) {
		c.latestOnly = enabled
	}
}

// WithTimeout bounds each lookup. Zero leaves the transport's own timeout in
// charge.
func WithTimeout(timeout time.Duration) ControllerOption {
	return func(c *Controller) {
		if timeout >= 0 {
			c.timeout = timeout
		}
	}
}

// WithLoadInitial makes Initialize trigger a lookup when the source already
// carries a value, as happens when an existing agreement is edited.
func WithLoadInitial(enabled bool) ControllerOption {
	return func(c *Controller) {
		c.loadInitial = enabled
	}
}

// WithContext sets the base context handed to lookups started by change
// notifications.
func WithContext(ctx context.Context) ControllerOption {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
