package either

import (
	"github.com/ib-77/adt3/pkg/adt"
)

// BindLeft switches to the Either produced by f on the left branch,
// re-wrapping the right value untouched otherwise. f runs at most once.
func BindLeft[L, L2, R any](e Either[L, R], f func(L) Either[L2, R]) Either[L2, R] {
	if l, ok := e.GetLeft(); ok {
		return f(l)
	}
	r, _ := e.GetRight()
	return Right[L2](r)
}

// BindRight switches to the Either produced by f on the right branch,
// re-wrapping the left value untouched otherwise. f runs at most once.
func BindRight[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if r, ok := e.GetRight(); ok {
		return f(r)
	}
	l, _ := e.GetLeft()
	return Left[L, R2](l)
}

// MapLeft transforms the left value with a pure function, re-wrapping the
// right value untouched. f runs at most once, only on the left branch.
func MapLeft[L, L2, R any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if l, ok := e.GetLeft(); ok {
		return Left[L2, R](f(l))
	}
	r, _ := e.GetRight()
	return Right[L2](r)
}

// MapRight transforms the right value with a pure function, re-wrapping
// the left value untouched. f runs at most once, only on the right branch.
func MapRight[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if r, ok := e.GetRight(); ok {
		return Right[L](f(r))
	}
	l, _ := e.GetLeft()
	return Left[L, R2](l)
}

// Match consumes the value exhaustively: onLeft over the left value or
// onRight over the right value. Both handlers must be supplied; a nil
// handler panics with adt.ErrNilValue. Exactly one handler runs,
// synchronously.
func Match[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if onLeft == nil || onRight == nil {
		adt.RaiseNilValue("Match called with a nil handler")
	}
	if l, ok := e.GetLeft(); ok {
		return onLeft(l)
	}
	r, _ := e.GetRight()
	return onRight(r)
}

// ContainsLeft reports whether the value is Left holding exactly v under ==.
func ContainsLeft[L comparable, R any](e Either[L, R], v L) bool {
	l, ok := e.GetLeft()
	return ok && l == v
}

// ContainsRight reports whether the value is Right holding exactly v under ==.
func ContainsRight[L any, R comparable](e Either[L, R], v R) bool {
	r, ok := e.GetRight()
	return ok && r == v
}

// ContainsLeftFunc reports whether the value is Left holding a value equal
// to v under eq. It panics with adt.ErrNilValue when eq is nil.
func ContainsLeftFunc[L, R any](e Either[L, R], v L, eq func(a, b L) bool) bool {
	if eq == nil {
		adt.RaiseNilValue("ContainsLeftFunc called with a nil comparer")
	}
	l, ok := e.GetLeft()
	return ok && eq(l, v)
}

// ContainsRightFunc reports whether the value is Right holding a value
// equal to v under eq. It panics with adt.ErrNilValue when eq is nil.
func ContainsRightFunc[L, R any](e Either[L, R], v R, eq func(a, b R) bool) bool {
	if eq == nil {
		adt.RaiseNilValue("ContainsRightFunc called with a nil comparer")
	}
	r, ok := e.GetRight()
	return ok && eq(r, v)
}
