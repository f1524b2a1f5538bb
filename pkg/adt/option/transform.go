package option

import (
	"github.com/ib-77/adt3/pkg/adt"
)

// Map transforms a present value with f, leaving None untouched. f runs at
// most once, only when o is present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return SomeUnsafe(f(v))
	}
	return None[U]()
}

// MapOr folds the option to a plain value: f over the payload when present,
// def otherwise.
func MapOr[T, U any](o Option[T], f func(T) U, def U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return def
}

// MapOrElse folds like MapOr but computes the default lazily. Exactly one
// of f and def runs.
func MapOrElse[T, U any](o Option[T], f func(T) U, def func() U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return def()
}

// Match consumes the option exhaustively: onSome over the payload when
// present, onNone otherwise. Both handlers must be supplied; a nil handler
// panics with adt.ErrNilValue. Exactly one handler runs, synchronously.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if onSome == nil || onNone == nil {
		adt.RaiseNilValue("Match called with a nil handler")
	}
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// Zip pairs two present values into Some(Pair); any absent side yields
// None. Presence is symmetric in the two arguments, payload order is not.
func Zip[T, U any](a Option[T], b Option[U]) Option[adt.Pair[T, U]] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return SomeUnsafe(adt.PairOf(av, bv))
	}
	return None[adt.Pair[T, U]]()
}

// ZipWith combines two present values through f; any absent side yields
// None. f runs at most once.
func ZipWith[T, U, V any](a Option[T], b Option[U], f func(T, U) V) Option[V] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return SomeUnsafe(f(av, bv))
	}
	return None[V]()
}

// Unzip splits an option of a pair into an option per element: Some(pair)
// yields (Some(first), Some(second)), None yields (None, None).
func Unzip[T, U any](o Option[adt.Pair[T, U]]) (Option[T], Option[U]) {
	if p, ok := o.Get(); ok {
		return SomeUnsafe(p.First), SomeUnsafe(p.Second)
	}
	return None[T](), None[U]()
}

// Contains reports whether the option holds exactly v under ==.
func Contains[T comparable](o Option[T], v T) bool {
	cur, ok := o.Get()
	return ok && cur == v
}

// ContainsFunc reports whether the option holds a value equal to v under
// eq. It panics with adt.ErrNilValue when eq is nil.
func ContainsFunc[T any](o Option[T], v T, eq func(a, b T) bool) bool {
	if eq == nil {
		adt.RaiseNilValue("ContainsFunc called with a nil comparer")
	}
	cur, ok := o.Get()
	return ok && eq(cur, v)
}
