package option

import (
	"fmt"

	"github.com/ib-77/adt3/pkg/adt"
)

// Option wraps a value that may be absent. The zero value is None. Once
// constructed an Option is never mutated; every combinator returns a new
// value. Absent options always carry the zero payload, so two None values
// of one instantiated type compare equal with == when T is comparable.
type Option[T any] struct {
	v    T
	some bool
}

// Some wraps a present value. It panics with adt.ErrNilValue when v is a
// nil pointer-like payload: an Option never holds nil.
func Some[T any](v T) Option[T] {
	if adt.IsNil(v) {
		adt.RaiseNilValue("Some called with a nil payload")
	}
	return Option[T]{v: v, some: true}
}

// SomeUnsafe wraps a present value without the nil probe. Meant for payload
// types that cannot be nil (plain value types), where the reflect check in
// Some buys nothing.
func SomeUnsafe[T any](v T) Option[T] {
	return Option[T]{v: v, some: true}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr adapts Go's nullable representation: a nil pointer becomes None,
// anything else Some of the pointed-to value. This is the single
// nullable-interop entry point.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return SomeUnsafe(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether a value is present and pred holds on it. It
// panics with adt.ErrNilValue when pred is nil; pred runs at most once.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	if pred == nil {
		adt.RaiseNilValue("IsSomeAnd called with a nil predicate")
	}
	return o.some && pred(o.v)
}

// Get returns the payload and whether it is present. The payload is the
// zero value when absent. Get never panics.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.some
}

// Expect returns the payload or panics with adt.ErrWrongVariant carrying
// msg when the option is absent.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		adt.RaiseWrongVariant(msg)
	}
	return o.v
}

// Unwrap returns the payload or panics with adt.ErrWrongVariant and a fixed
// message when the option is absent.
func (o Option[T]) Unwrap() T {
	return o.Expect("Unwrap called on a None option")
}

// UnwrapOr returns the payload when present, otherwise fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.v
	}
	return fallback
}

// UnwrapOrElse returns the payload when present, otherwise the result of
// fallback. fallback runs only when the option is absent.
func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if o.some {
		return o.v
	}
	return fallback()
}

// Filter keeps a present value that satisfies pred and turns everything
// else into None. Filtering twice with the same predicate equals filtering
// once.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.v) {
		return o
	}
	return None[T]()
}

// And returns other when this option is present, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.some {
		return other
	}
	return None[T]()
}

// AndThen returns fn() when this option is present, otherwise None. fn runs
// only when present.
func (o Option[T]) AndThen(fn func() Option[T]) Option[T] {
	if o.some {
		return fn()
	}
	return None[T]()
}

// Or returns this option when present, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns this option when present, otherwise fn(). fn runs only
// when absent.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Xor returns whichever of the two options is present when exactly one is.
// Both present or both absent yield None; neither side is preferred.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// String renders Some(payload) via the payload's own formatting, and the
// fixed "None" when absent.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.v)
	}
	return "None"
}
