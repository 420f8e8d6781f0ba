package depselect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Option is a single entry of the dependent control.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
	// Placeholder marks informational entries (awaiting selection, loading,
	// empty or failed) that never correspond to a box.
	Placeholder bool `json:"placeholder,omitempty"`
}

// Box is the wire descriptor returned by the lookup endpoint.
type Box struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// UnmarshalJSON accepts both string and numeric identifiers and keeps them as
// opaque strings. A null entry is rejected.
func (b *Box) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNullBox
	}
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Label    string          `json:"label"`
		Disabled bool            `json:"disabled"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := decodeID(raw.ID)
	if err != nil {
		return err
	}
	b.ID = id
	b.Label = raw.Label
	b.Disabled = raw.Disabled
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("depselect: box id must be a string or number: %w", err)
	}
	return n.String(), nil
}

// SourceControl is the selection control whose value keys the lookup.
type SourceControl interface {
	// Value returns the current selection; empty means unselected.
	Value() string
	// OnChange registers fn to run whenever the selection changes and returns
	// a function that removes the registration.
	OnChange(fn func()) (remove func())
}

// DependentControl is the selection control whose options are derived from
// the source. SetOptions fully replaces the current option list.
type DependentControl interface {
	SetOptions(options []Option)
}

// Lookup resolves the boxes that belong to a source value.
type Lookup interface {
	Lookup(ctx context.Context, sourceValue string) ([]Box, error)
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(ctx context.Context, sourceValue string) ([]Box, error)

func (fn LookupFunc) Lookup(ctx context.Context, sourceValue string) ([]Box, error) {
	return fn(ctx, sourceValue)
}
