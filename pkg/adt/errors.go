package adt

import (
	"errors"
	"fmt"
)

// ErrNilValue reports caller misuse at construction: a nil payload passed to
// a checked constructor, or a missing predicate/handler where one is
// mandatory. It is never raised by the total combinators.
var ErrNilValue = errors.New("adt: nil value")

// ErrWrongVariant reports an unwrap of the variant a wrapper does not hold,
// e.g. Unwrap on a None option or UnwrapErr on an Ok result. The decision is
// made purely on the discriminant, never on external state.
var ErrWrongVariant = errors.New("adt: wrong variant")

// RaiseNilValue panics with ErrNilValue wrapped under msg.
func RaiseNilValue(msg string) {
	panic(fmt.Errorf("%w: %s", ErrNilValue, msg))
}

// RaiseWrongVariant panics with ErrWrongVariant wrapped under msg. The
// Expect family passes the caller's message, the Unwrap family a fixed one.
func RaiseWrongVariant(msg string) {
	panic(fmt.Errorf("%w: %s", ErrWrongVariant, msg))
}
