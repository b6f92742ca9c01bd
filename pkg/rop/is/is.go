package is

import (
	"context"
	"errors"
	"reflect"
)

// Nothing reports whether v counts as absent: a nil interface or a nil
// pointer, func, chan, interface or unsafe pointer. Nil slices and maps are
// usable zero values in Go and count as present.
func Nothing(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Defined reports whether v holds anything at all, typed nils included.
func Defined(v any) bool {
	return v != nil
}

func Error(v any) bool {
	if Nothing(v) {
		return false
	}
	_, ok := v.(error)
	return ok
}

func Cancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
