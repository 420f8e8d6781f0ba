//go:build js && wasm

// Package dom binds depselect controls to <select> elements in the browser.
package dom

import (
	"sync"
	"syscall/js"

	"github.com/goliatone/go-depselect/pkg/depselect"
)

const (
	// SourceID is the id of the warehouse select.
	SourceID = "id_warehouse_select"
	// DependentID is the id of the box select.
	DependentID = "id_boxes_select"
)

// Select wraps a <select> element. A Select over a missing element reports
// Found() == false and its methods do nothing.
type Select struct {
	node js.Value
}

var (
	_ depselect.SourceControl    = Select{}
	_ depselect.DependentControl = Select{}
)

// ByID looks the element up in the current document.
func ByID(id string) Select {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return Select{}
	}
	return Select{node: doc.Call("getElementById", id)}
}

// Found reports whether the element exists.
func (s Select) Found() bool {
	return s.node.Truthy()
}

// Value returns the selected option's value.
func (s Select) Value() string {
	if !s.Found() {
		return ""
	}
	return s.node.Get("value").String()
}

// OnChange registers fn as a "change" listener. The returned function
// detaches the listener and releases the callback.
func (s Select) OnChange(fn func()) func() {
	if !s.Found() || fn == nil {
		return func() {}
	}
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	s.node.Call("addEventListener", "change", cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.node.Call("removeEventListener", "change", cb)
			cb.Release()
		})
	}
}

// SetOptions replaces every <option> child. Labels are set as text so they
// are never parsed as markup.
func (s Select) SetOptions(options []depselect.Option) {
	if !s.Found() {
		return
	}
	doc := js.Global().Get("document")

	s.node.Set("innerHTML", "")
	for _, opt := range options {
		el := doc.Call("createElement", "option")
		el.Set("value", opt.Value)
		el.Set("textContent", opt.Label)
		if opt.Disabled {
			el.Set("disabled", true)
		}
		s.node.Call("appendChild", el)
	}
}

// Attribute returns the element's attribute or "" when unset.
func (s Select) Attribute(name string) string {
	if !s.Found() {
		return ""
	}
	v := s.node.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

// Origin returns window.location.origin.
func Origin() string {
	loc := js.Global().Get("location")
	if !loc.Truthy() {
		return ""
	}
	return loc.Get("origin").String()
}

// Lang returns the document's lang attribute.
func Lang() string {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return ""
	}
	root := doc.Get("documentElement")
	if !root.Truthy() {
		return ""
	}
	v := root.Call("getAttribute", "lang")
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}
