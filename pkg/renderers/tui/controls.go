package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-depselect/pkg/depselect"
)

// SourceSelect is a terminal-backed depselect.SourceControl. Prompt stores
// the chosen value and notifies listeners the way a browser change event
// would.
type SourceSelect struct {
	mu        sync.Mutex
	options   []depselect.Option
	value     string
	listeners map[int]func()
	nextID    int
}

var _ depselect.SourceControl = (*SourceSelect)(nil)

// NewSourceSelect builds a source control over the given options.
func NewSourceSelect(options []depselect.Option) *SourceSelect {
	return &SourceSelect{
		options:   append([]depselect.Option(nil), options...),
		listeners: make(map[int]func()),
	}
}

// Value returns the current selection.
func (s *SourceSelect) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// OnChange registers fn and returns its remover.
func (s *SourceSelect) OnChange(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Set changes the value and notifies listeners, even when the value is
// unchanged.
func (s *SourceSelect) Set(value string) {
	s.mu.Lock()
	s.value = value
	listeners := make([]func(), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Prompt asks the user to pick one of the options and applies it.
func (s *SourceSelect) Prompt(ctx context.Context, driver PromptDriver, message string) (depselect.Option, error) {
	s.mu.Lock()
	options := append([]depselect.Option(nil), s.options...)
	current := s.value
	s.mu.Unlock()

	if len(options) == 0 {
		return depselect.Option{}, ErrNoSelectableOptions
	}

	labels := make([]string, len(options))
	defaultIndex := 0
	for i, opt := range options {
		labels[i] = opt.Label
		if opt.Value == current {
			defaultIndex = i
		}
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      labels,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return depselect.Option{}, err
	}
	if idx < 0 || idx >= len(options) {
		return depselect.Option{}, fmt.Errorf("tui: selection %d out of range", idx)
	}

	chosen := options[idx]
	s.Set(chosen.Value)
	return chosen, nil
}

// DependentSelect is a terminal-backed depselect.DependentControl. It holds
// whatever options the controller last rendered.
type DependentSelect struct {
	mu      sync.Mutex
	options []depselect.Option
}

var _ depselect.DependentControl = (*DependentSelect)(nil)

// SetOptions replaces the held options.
func (d *DependentSelect) SetOptions(options []depselect.Option) {
	d.mu.Lock()
	d.options = append([]depselect.Option(nil), options...)
	d.mu.Unlock()
}

// Options returns a copy of the held options.
func (d *DependentSelect) Options() []depselect.Option {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]depselect.Option(nil), d.options...)
}

// Choose prompts for one of the enabled, non-placeholder options. Disabled
// options are listed through Info so the user still sees them. When nothing
// is selectable the placeholder text is shown and ErrNoSelectableOptions is
// returned.
func (d *DependentSelect) Choose(ctx context.Context, driver PromptDriver, message string) (depselect.Option, error) {
	options := d.Options()

	var selectable []depselect.Option
	for _, opt := range options {
		switch {
		case opt.Placeholder:
			if err := driver.Info(ctx, opt.Label); err != nil {
				return depselect.Option{}, err
			}
		case opt.Disabled:
			if err := driver.Info(ctx, "  "+opt.Label); err != nil {
				return depselect.Option{}, err
			}
		default:
			selectable = append(selectable, opt)
		}
	}
	if len(selectable) == 0 {
		return depselect.Option{}, ErrNoSelectableOptions
	}

	labels := make([]string, len(selectable))
	for i, opt := range selectable {
		labels[i] = opt.Label
	}
	idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: labels})
	if err != nil {
		return depselect.Option{}, err
	}
	if idx < 0 || idx >= len(selectable) {
		return depselect.Option{}, fmt.Errorf("tui: selection %d out of range", idx)
	}
	return selectable[idx], nil
}
