package boxes

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-depselect/pkg/depselect"
)

// LabelFormat controls how a box is described in the dropdown.
type LabelFormat struct {
	// Box receives the box number, the volume and the status text.
	Box  string
	Free string
	// Occupied receives the reference of the agreement holding the box.
	Occupied string
	// Busy is used for boxes that are not free and carry no agreement.
	Busy string
}

func DefaultLabelFormat() LabelFormat {
	return LabelFormat{
		Box:      "Box #%d (%sm³) - %s",
		Free:     "Free",
		Occupied: "Occupied (%s)",
		Busy:     "Occupied",
	}
}

// RussianLabelFormat matches the wording of the storage site.
func RussianLabelFormat() LabelFormat {
	return LabelFormat{
		Box:      "Бокс №%d (%sм³) - %s",
		Free:     "Свободен",
		Occupied: "Занят (%s)",
		Busy:     "Занят",
	}
}

func (f LabelFormat) withDefaults() LabelFormat {
	def := DefaultLabelFormat()
	if f.Box == "" {
		f.Box = def.Box
	}
	if f.Free == "" {
		f.Free = def.Free
	}
	if f.Occupied == "" {
		f.Occupied = def.Occupied
	}
	if f.Busy == "" {
		f.Busy = def.Busy
	}
	return f
}

// Label renders the human readable description of box.
func (f LabelFormat) Label(box Box) string {
	f = f.withDefaults()
	status := f.Free
	if !box.Free() {
		status = f.Busy
		if ref := strings.TrimSpace(box.CurrentAgreement); ref != "" {
			status = fmt.Sprintf(f.Occupied, ref)
		}
	}
	return fmt.Sprintf(f.Box, box.Number, box.Volume.StringFixed(2), status)
}

// Descriptor converts box into its wire form.
func (f LabelFormat) Descriptor(box Box) depselect.Box {
	return depselect.Box{
		ID:       box.ID,
		Label:    sanitizeLabel(f.Label(box)),
		Disabled: !box.Free(),
	}
}

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// sanitizeLabel strips markup from labels assembled from stored text. The
// strict policy entity-encodes what it keeps, so the result is unescaped
// back to plain text.
func sanitizeLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(labelPolicy.Sanitize(trimmed)))
}
