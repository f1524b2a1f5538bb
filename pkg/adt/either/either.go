package either

import (
	"fmt"

	"github.com/ib-77/adt3/pkg/adt"
)

// Either wraps exactly one of two values: Left carrying an L or Right
// carrying an R. The sides are symmetric peers. Discriminant and payload
// are set together at construction and never mutated; the unpopulated side
// always carries its zero value.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left wraps a value on the left side.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, isLeft: true}
}

// Right wraps a value on the right side.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v}
}

// IsLeft reports whether the left side is populated.
func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

// IsRight reports whether the right side is populated.
func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

// IsLeftAnd reports whether the value is Left and pred holds on it. It
// panics with adt.ErrNilValue when pred is nil.
func (e Either[L, R]) IsLeftAnd(pred func(L) bool) bool {
	if pred == nil {
		adt.RaiseNilValue("IsLeftAnd called with a nil predicate")
	}
	return e.isLeft && pred(e.left)
}

// IsRightAnd reports whether the value is Right and pred holds on it. It
// panics with adt.ErrNilValue when pred is nil.
func (e Either[L, R]) IsRightAnd(pred func(R) bool) bool {
	if pred == nil {
		adt.RaiseNilValue("IsRightAnd called with a nil predicate")
	}
	return !e.isLeft && pred(e.right)
}

// GetLeft returns the left value and whether that side is populated.
// GetLeft never panics.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, e.isLeft
}

// GetRight returns the right value and whether that side is populated.
// GetRight never panics.
func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, !e.isLeft
}

// ExpectLeft returns the left value or panics with adt.ErrWrongVariant
// carrying msg when the value is Right.
func (e Either[L, R]) ExpectLeft(msg string) L {
	if !e.isLeft {
		adt.RaiseWrongVariant(msg)
	}
	return e.left
}

// UnwrapLeft returns the left value or panics with adt.ErrWrongVariant and
// a fixed message when the value is Right.
func (e Either[L, R]) UnwrapLeft() L {
	return e.ExpectLeft("UnwrapLeft called on a Right value")
}

// ExpectRight returns the right value or panics with adt.ErrWrongVariant
// carrying msg when the value is Left.
func (e Either[L, R]) ExpectRight(msg string) R {
	if e.isLeft {
		adt.RaiseWrongVariant(msg)
	}
	return e.right
}

// UnwrapRight returns the right value or panics with adt.ErrWrongVariant
// and a fixed message when the value is Left.
func (e Either[L, R]) UnwrapRight() R {
	return e.ExpectRight("UnwrapRight called on a Left value")
}

// UnwrapLeftOr returns the left value when Left, otherwise fallback.
func (e Either[L, R]) UnwrapLeftOr(fallback L) L {
	if e.isLeft {
		return e.left
	}
	return fallback
}

// UnwrapLeftOrElse returns the left value when Left, otherwise the result
// of fallback. fallback runs only when the value is Right.
func (e Either[L, R]) UnwrapLeftOrElse(fallback func() L) L {
	if e.isLeft {
		return e.left
	}
	return fallback()
}

// UnwrapRightOr returns the right value when Right, otherwise fallback.
func (e Either[L, R]) UnwrapRightOr(fallback R) R {
	if !e.isLeft {
		return e.right
	}
	return fallback
}

// UnwrapRightOrElse returns the right value when Right, otherwise the
// result of fallback. fallback runs only when the value is Left.
func (e Either[L, R]) UnwrapRightOrElse(fallback func() R) R {
	if !e.isLeft {
		return e.right
	}
	return fallback()
}

// AndLeft returns other when this value is Left, otherwise the Right
// unchanged.
func (e Either[L, R]) AndLeft(other Either[L, R]) Either[L, R] {
	if e.isLeft {
		return other
	}
	return e
}

// AndLeftThen returns fn() when this value is Left, otherwise the Right
// unchanged. fn runs only on the left branch.
func (e Either[L, R]) AndLeftThen(fn func() Either[L, R]) Either[L, R] {
	if e.isLeft {
		return fn()
	}
	return e
}

// AndRight returns other when this value is Right, otherwise the Left
// unchanged.
func (e Either[L, R]) AndRight(other Either[L, R]) Either[L, R] {
	if !e.isLeft {
		return other
	}
	return e
}

// AndRightThen returns fn() when this value is Right, otherwise the Left
// unchanged. fn runs only on the right branch.
func (e Either[L, R]) AndRightThen(fn func() Either[L, R]) Either[L, R] {
	if !e.isLeft {
		return fn()
	}
	return e
}

// String renders Left(value) or Right(value) via the payload's own
// formatting.
func (e Either[L, R]) String() string {
	if e.isLeft {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}
