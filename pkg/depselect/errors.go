package depselect

import (
	"errors"
	"reflect"
)

var (
	errLookupPanicked = errors.New("depselect: lookup panicked")
	errNullBox        = errors.New("depselect: box entry is null")
)

// isNil reports nil interfaces as well as interfaces wrapping a nil pointer,
// map, slice or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
