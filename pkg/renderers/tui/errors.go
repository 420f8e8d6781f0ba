package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSelectableOptions is returned when every option is a placeholder
	// or disabled.
	ErrNoSelectableOptions = errors.New("tui: no selectable options")
	// ErrNotConfigured is returned when the form is missing a control or
	// its lookup.
	ErrNotConfigured = errors.New("tui: form not configured")
)
