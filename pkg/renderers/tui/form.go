package tui

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-depselect/pkg/depselect"
)

// Selection is the outcome of a completed form.
type Selection struct {
	Warehouse depselect.Option
	Box       depselect.Option
}

// Form asks for a warehouse, loads its boxes through a depselect.Controller
// and then asks for one of the available boxes.
type Form struct {
	driver     PromptDriver
	warehouses []depselect.Option
	lookup     depselect.Lookup
	messages   depselect.Messages
	prompts    Prompts
	logger     zerolog.Logger
	timeout    time.Duration
}

// NewForm builds a form over the given warehouses. Without WithPromptDriver
// the survey driver is used.
func NewForm(warehouses []depselect.Option, lookup depselect.Lookup, opts ...Option) *Form {
	f := &Form{
		warehouses: append([]depselect.Option(nil), warehouses...),
		lookup:     lookup,
		messages:   depselect.DefaultMessages(),
		prompts:    DefaultPrompts(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver()
	}
	return f
}

// Run drives the prompts until a box is chosen, the user declines to try
// another warehouse, or the context is cancelled.
func (f *Form) Run(ctx context.Context) (Selection, error) {
	source := NewSourceSelect(f.warehouses)
	dependent := &DependentSelect{}

	controller := depselect.New(source, dependent, f.lookup,
		depselect.WithContext(ctx),
		depselect.WithLogger(f.logger),
		depselect.WithMessages(f.messages),
		depselect.WithTimeout(f.timeout),
	)
	if !controller.Initialize() {
		return Selection{}, ErrNotConfigured
	}
	defer controller.Close()

	for {
		warehouse, err := source.Prompt(ctx, f.driver, f.prompts.Warehouse)
		if err != nil {
			return Selection{}, err
		}
		controller.Wait()

		box, err := dependent.Choose(ctx, f.driver, f.prompts.Box)
		if errors.Is(err, ErrNoSelectableOptions) {
			again, confirmErr := f.driver.Confirm(ctx, ConfirmConfig{Message: f.prompts.Retry, Default: true})
			if confirmErr != nil {
				return Selection{}, confirmErr
			}
			if again {
				continue
			}
			return Selection{}, err
		}
		if err != nil {
			return Selection{}, err
		}

		f.logger.Debug().
			Str("warehouse_id", warehouse.Value).
			Str("box_id", box.Value).
			Msg("depselect: box chosen")
		return Selection{Warehouse: warehouse, Box: box}, nil
	}
}
