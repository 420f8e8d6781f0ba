// Package html renders the warehouse/box form fragment on the server so the
// page starts in the same state the browser controller would produce.
package html

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-depselect/pkg/depselect"
	"github.com/goliatone/go-depselect/pkg/render/template"
	"github.com/goliatone/go-depselect/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const (
	formTemplate    = "form"
	optionsTemplate = "options"
)

// Form describes one render of the form fragment.
type Form struct {
	Warehouses        []depselect.Option
	SelectedWarehouse string
	// Boxes defaults to the awaiting-source placeholder when empty.
	Boxes       []depselect.Option
	SelectedBox string
	LookupURL   string
	ScriptURL   string
}

// Labels holds the visible field captions.
type Labels struct {
	Warehouse       string
	Box             string
	WarehousePrompt string
}

func DefaultLabels() Labels {
	return Labels{
		Warehouse:       "Warehouse",
		Box:             "Box",
		WarehousePrompt: "-- Choose a warehouse --",
	}
}

// Renderer renders form fragments and option lists.
type Renderer struct {
	templates template.TemplateRenderer
	messages  depselect.Messages
	labels    Labels
	manifest  *theme.Manifest
	variant   string

	templatesDir string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMessages sets the placeholder strings used for the box select.
func WithMessages(messages depselect.Messages) Option {
	return func(r *Renderer) {
		r.messages = messages
	}
}

// WithLabels overrides the field captions.
func WithLabels(labels Labels) Option {
	return func(r *Renderer) {
		def := DefaultLabels()
		if labels.Warehouse == "" {
			labels.Warehouse = def.Warehouse
		}
		if labels.Box == "" {
			labels.Box = def.Box
		}
		if labels.WarehousePrompt == "" {
			labels.WarehousePrompt = def.WarehousePrompt
		}
		r.labels = labels
	}
}

// WithTheme exposes the manifest tokens (and the variant's overrides) as CSS
// custom properties on the form element.
func WithTheme(manifest *theme.Manifest, variant string) Option {
	return func(r *Renderer) {
		r.manifest = manifest
		r.variant = strings.TrimSpace(variant)
	}
}

// WithTemplateRenderer swaps the template engine, e.g. to load overridden
// templates from disk.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if renderer != nil {
			r.templates = renderer
		}
	}
}

// WithTemplatesDir loads templates from dir first, falling back to the
// embedded ones for anything dir does not provide.
func WithTemplatesDir(dir string) Option {
	return func(r *Renderer) {
		r.templatesDir = strings.TrimSpace(dir)
	}
}

// New builds a renderer backed by the embedded templates.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		messages: depselect.DefaultMessages(),
		labels:   DefaultLabels(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.templates == nil {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			return nil, fmt.Errorf("html: templates: %w", err)
		}
		engineOpts := []gotemplate.Option{gotemplate.WithFS(sub)}
		if r.templatesDir != "" {
			engineOpts = append([]gotemplate.Option{gotemplate.WithBaseDir(r.templatesDir)}, engineOpts...)
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("html: template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// Options renders an <option> list.
func (r *Renderer) Options(options []depselect.Option, selected string) (string, error) {
	return r.templates.RenderTemplate(optionsTemplate, map[string]any{
		"options":  options,
		"selected": selected,
	})
}

// Form renders the form fragment with both selects.
func (r *Renderer) Form(form Form) (string, error) {
	warehouses := make([]depselect.Option, 0, len(form.Warehouses)+1)
	warehouses = append(warehouses, depselect.Option{Label: r.labels.WarehousePrompt, Placeholder: true})
	warehouses = append(warehouses, form.Warehouses...)

	boxes := form.Boxes
	if len(boxes) == 0 {
		boxes = depselect.Render(depselect.State{Kind: depselect.AwaitingSource}, r.messages)
	}

	return r.templates.RenderTemplate(formTemplate, map[string]any{
		"warehouses":         warehouses,
		"selected_warehouse": form.SelectedWarehouse,
		"boxes":              boxes,
		"selected_box":       form.SelectedBox,
		"lookup_url":         form.LookupURL,
		"script_url":         form.ScriptURL,
		"warehouse_label":    r.labels.Warehouse,
		"box_label":          r.labels.Box,
		"style":              r.style(),
	})
}

func (r *Renderer) style() string {
	if r.manifest == nil {
		return ""
	}
	tokens := make(map[string]string, len(r.manifest.Tokens))
	for key, value := range r.manifest.Tokens {
		tokens[key] = value
	}
	if r.variant != "" {
		if variant, ok := r.manifest.Variants[r.variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
	}
	if len(tokens) == 0 {
		return ""
	}

	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("--%s: %s", name, strings.TrimSpace(tokens[key])))
	}
	return strings.Join(parts, "; ")
}
