package adt

import (
	"reflect"
)

// IsNil reports whether i is nil itself or wraps a nil of a nillable kind
// (pointer, interface, map, slice, channel or func). Non-nillable kinds are
// never nil.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// Values collects the payloads of the wrappers that currently hold one,
// preserving order. Empty wrappers are skipped.
func Values[T any](gs ...Getter[T]) []T {
	out := make([]T, 0, len(gs))
	for _, g := range gs {
		if v, ok := g.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
