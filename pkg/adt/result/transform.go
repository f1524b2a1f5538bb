package result

import (
	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/option"
)

// Map transforms the success value with a pure function, re-wrapping the
// error channel untouched. f runs at most once, only on the Ok branch.
func Map[V, V2, E any](r Result[V, E], f func(V) V2) Result[V2, E] {
	if v, ok := r.Get(); ok {
		return Ok[V2, E](f(v))
	}
	e, _ := r.GetErr()
	return Err[V2, E](e)
}

// Bind switches to the Result produced by f on the Ok branch, re-wrapping
// the error channel untouched otherwise. f runs at most once.
func Bind[V, V2, E any](r Result[V, E], f func(V) Result[V2, E]) Result[V2, E] {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	e, _ := r.GetErr()
	return Err[V2, E](e)
}

// MapErr transforms the error value with a pure function, re-wrapping the
// success channel untouched. f runs at most once, only on the Err branch.
func MapErr[V, E, E2 any](r Result[V, E], f func(E) E2) Result[V, E2] {
	if e, isErr := r.GetErr(); isErr {
		return Err[V, E2](f(e))
	}
	v, _ := r.Get()
	return Ok[V, E2](v)
}

// BindErr switches to the Result produced by f on the Err branch,
// re-wrapping the success channel untouched otherwise. f runs at most once.
func BindErr[V, E, E2 any](r Result[V, E], f func(E) Result[V, E2]) Result[V, E2] {
	if e, isErr := r.GetErr(); isErr {
		return f(e)
	}
	v, _ := r.Get()
	return Ok[V, E2](v)
}

// MapOr folds the result to a plain value: f over the success value when
// Ok, def otherwise. The error value is discarded.
func MapOr[V, E, U any](r Result[V, E], f func(V) U, def U) U {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	return def
}

// MapOrElse folds like MapOr but computes the default lazily. Exactly one
// of f and def runs.
func MapOrElse[V, E, U any](r Result[V, E], f func(V) U, def func() U) U {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	return def()
}

// Match consumes the result exhaustively: onOk over the success value or
// onErr over the error value. Both handlers must be supplied; a nil handler
// panics with adt.ErrNilValue. Exactly one handler runs, synchronously.
func Match[V, E, U any](r Result[V, E], onOk func(V) U, onErr func(E) U) U {
	if onOk == nil || onErr == nil {
		adt.RaiseNilValue("Match called with a nil handler")
	}
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.GetErr()
	return onErr(e)
}

// FromOption lifts an option into a result: Some becomes Ok, None becomes
// Err(err).
func FromOption[V, E any](o option.Option[V], err E) Result[V, E] {
	if v, ok := o.Get(); ok {
		return Ok[V, E](v)
	}
	return Err[V, E](err)
}

// FromOptionElse lifts like FromOption but builds the error lazily. fn runs
// only when o is absent.
func FromOptionElse[V, E any](o option.Option[V], fn func() E) Result[V, E] {
	if v, ok := o.Get(); ok {
		return Ok[V, E](v)
	}
	return Err[V, E](fn())
}
