package result

import (
	"fmt"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/option"
)

// Result wraps either a success value or an error value, never both.
// Discriminant and payload are set together at construction and never
// mutated; every combinator returns a new value. The unpopulated channel
// always carries its zero value.
type Result[V, E any] struct {
	val V
	err E
	ok  bool
}

// Ok wraps a success value. Unlike option.Some it performs no nil
// validation: the success channel carries whatever the caller produced.
func Ok[V, E any](v V) Result[V, E] {
	return Result[V, E]{val: v, ok: true}
}

// Err wraps an error value.
func Err[V, E any](e E) Result[V, E] {
	return Result[V, E]{err: e}
}

// Of adapts Go's two-value return convention: a non-nil err yields Err,
// otherwise Ok(v).
func Of[V any](v V, err error) Result[V, error] {
	if err != nil {
		return Err[V, error](err)
	}
	return Ok[V, error](v)
}

// IsOk reports whether the success channel is populated.
func (r Result[V, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the error channel is populated.
func (r Result[V, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether the result is Ok and pred holds on the success
// value. It panics with adt.ErrNilValue when pred is nil.
func (r Result[V, E]) IsOkAnd(pred func(V) bool) bool {
	if pred == nil {
		adt.RaiseNilValue("IsOkAnd called with a nil predicate")
	}
	return r.ok && pred(r.val)
}

// IsErrAnd reports whether the result is Err and pred holds on the error
// value. It panics with adt.ErrNilValue when pred is nil.
func (r Result[V, E]) IsErrAnd(pred func(E) bool) bool {
	if pred == nil {
		adt.RaiseNilValue("IsErrAnd called with a nil predicate")
	}
	return !r.ok && pred(r.err)
}

// Get returns the success value and whether the result is Ok. Get never
// panics.
func (r Result[V, E]) Get() (V, bool) {
	return r.val, r.ok
}

// GetErr returns the error value and whether the result is Err. GetErr
// never panics.
func (r Result[V, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

// Expect returns the success value or panics with adt.ErrWrongVariant
// carrying msg when the result is Err.
func (r Result[V, E]) Expect(msg string) V {
	if !r.ok {
		adt.RaiseWrongVariant(msg)
	}
	return r.val
}

// Unwrap returns the success value or panics with adt.ErrWrongVariant and
// a fixed message when the result is Err.
func (r Result[V, E]) Unwrap() V {
	return r.Expect("Unwrap called on an Err result")
}

// ExpectErr returns the error value or panics with adt.ErrWrongVariant
// carrying msg when the result is Ok.
func (r Result[V, E]) ExpectErr(msg string) E {
	if r.ok {
		adt.RaiseWrongVariant(msg)
	}
	return r.err
}

// UnwrapErr returns the error value or panics with adt.ErrWrongVariant and
// a fixed message when the result is Ok.
func (r Result[V, E]) UnwrapErr() E {
	return r.ExpectErr("UnwrapErr called on an Ok result")
}

// UnwrapOr returns the success value when Ok, otherwise fallback.
func (r Result[V, E]) UnwrapOr(fallback V) V {
	if r.ok {
		return r.val
	}
	return fallback
}

// UnwrapOrElse returns the success value when Ok, otherwise the result of
// fallback. fallback runs only on the Err branch.
func (r Result[V, E]) UnwrapOrElse(fallback func() V) V {
	if r.ok {
		return r.val
	}
	return fallback()
}

// UnwrapErrOr returns the error value when Err, otherwise fallback.
func (r Result[V, E]) UnwrapErrOr(fallback E) E {
	if !r.ok {
		return r.err
	}
	return fallback
}

// UnwrapErrOrElse returns the error value when Err, otherwise the result
// of fallback. fallback runs only on the Ok branch.
func (r Result[V, E]) UnwrapErrOrElse(fallback func() E) E {
	if !r.ok {
		return r.err
	}
	return fallback()
}

// And returns other when this result is Ok, otherwise the Err unchanged.
func (r Result[V, E]) And(other Result[V, E]) Result[V, E] {
	if r.ok {
		return other
	}
	return r
}

// AndThen returns fn() when this result is Ok, otherwise the Err unchanged.
// fn runs only on the Ok branch.
func (r Result[V, E]) AndThen(fn func() Result[V, E]) Result[V, E] {
	if r.ok {
		return fn()
	}
	return r
}

// Or returns this result when Ok, otherwise other.
func (r Result[V, E]) Or(other Result[V, E]) Result[V, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns this result when Ok, otherwise fn(). fn runs only on the
// Err branch.
func (r Result[V, E]) OrElse(fn func() Result[V, E]) Result[V, E] {
	if r.ok {
		return r
	}
	return fn()
}

// Filter keeps an Ok value that satisfies pred, turns an Ok value that
// fails pred into Err(orElse(value)) and leaves Err untouched. pred and
// orElse run at most once each, only on the Ok branch.
func (r Result[V, E]) Filter(pred func(V) bool, orElse func(V) E) Result[V, E] {
	if !r.ok {
		return r
	}
	if pred(r.val) {
		return r
	}
	return Err[V, E](orElse(r.val))
}

// ToOption narrows the result to its success channel: Ok becomes Some, Err
// becomes None and the error value is discarded. An Ok holding a nil
// payload narrows to None, keeping option's non-nil invariant intact.
func (r Result[V, E]) ToOption() option.Option[V] {
	if r.ok && !adt.IsNil(r.val) {
		return option.SomeUnsafe(r.val)
	}
	return option.None[V]()
}

// String renders Ok(value) or Err(error) via the payload's own formatting.
func (r Result[V, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.val)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
