package tui

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-depselect/pkg/depselect"
)

// Prompts holds the questions asked by the form.
type Prompts struct {
	Warehouse string
	Box       string
	Retry     string
}

func DefaultPrompts() Prompts {
	return Prompts{
		Warehouse: "Warehouse",
		Box:       "Box",
		Retry:     "Choose another warehouse?",
	}
}

// RussianPrompts mirrors DefaultPrompts for the ru locale.
func RussianPrompts() Prompts {
	return Prompts{
		Warehouse: "Склад",
		Box:       "Бокс",
		Retry:     "Выбрать другой склад?",
	}
}

// Option configures a Form.
type Option func(*Form)

// WithPromptDriver overrides the prompt driver used by the form.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Form) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithMessages sets the placeholder strings rendered into the box list.
func WithMessages(messages depselect.Messages) Option {
	return func(f *Form) {
		f.messages = messages
	}
}

// WithPrompts overrides the question texts. Empty fields keep the defaults.
func WithPrompts(prompts Prompts) Option {
	return func(f *Form) {
		def := DefaultPrompts()
		if prompts.Warehouse == "" {
			prompts.Warehouse = def.Warehouse
		}
		if prompts.Box == "" {
			prompts.Box = def.Box
		}
		if prompts.Retry == "" {
			prompts.Retry = def.Retry
		}
		f.prompts = prompts
	}
}

// WithLogger attaches a logger that is also handed to the controller.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

// WithTimeout bounds each box lookup.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Form) {
		f.timeout = timeout
	}
}
