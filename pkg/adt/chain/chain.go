package chain

import (
	"github.com/ib-77/adt3/pkg/adt/result"
)

// Chain wraps a result.Result to enable fluent chaining.
type Chain[T any] struct {
	res result.Result[T, error]
}

// Start creates a new chain from a result.Result.
func Start[T any](r result.Result[T, error]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a success value.
func FromValue[T any](v T) Chain[T] {
	return Start(result.Ok[T, error](v))
}

// Try creates a new chain from an ordinary (T, error) return.
func Try[T any](v T, err error) Chain[T] {
	return Start(result.Of(v, err))
}

// Result returns the underlying result.Result.
func (c Chain[T]) Result() result.Result[T, error] {
	return c.res
}

// Then composes a function that already returns a result.Result.
func (c Chain[T]) Then(onOk func(T) result.Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: onOk(c.res.Unwrap())}
}

// ThenTry composes a function that returns (T, error), converting a
// non-nil error to the Err branch.
func (c Chain[T]) ThenTry(try func(T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: result.Of(try(c.res.Unwrap()))}
}

// Map transforms the success value, keeping the Err branch unchanged.
func (c Chain[T]) Map(onOk func(T) T) Chain[T] {
	return Chain[T]{res: result.Map(c.res, onOk)}
}

// Filter gates the success value: an Ok failing pred becomes
// Err(orElse(value)).
func (c Chain[T]) Filter(pred func(T) bool, orElse func(T) error) Chain[T] {
	return Chain[T]{res: c.res.Filter(pred, orElse)}
}

// Ensure triggers side effects for the current branch without changing the
// result. Nil handlers are skipped.
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if v, ok := c.res.Get(); ok {
		if onOk != nil {
			onOk(v)
		}
		return c
	}
	if onErr != nil {
		err, _ := c.res.GetErr()
		onErr(err)
	}
	return c
}

// And returns the required chain when this one is Ok, otherwise keeps the
// first Err.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return Chain[T]{res: c.res.And(required.res)}
}

// Or returns this chain when Ok, otherwise the alternative.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return Chain[T]{res: c.res.Or(alternative.res)}
}

// Finally collapses the chain to a final value via result.Match.
func (c Chain[T]) Finally(onOk func(T) T, onErr func(error) T) T {
	return result.Match(c.res, onOk, onErr)
}

// Then composes a function that moves the chain from T to U.
func Then[T, U any](c Chain[T], onOk func(T) result.Result[U, error]) Chain[U] {
	return Chain[U]{res: result.Bind(c.res, onOk)}
}

// ThenTry composes a (U, error) function, moving the chain from T to U.
func ThenTry[T, U any](c Chain[T], try func(T) (U, error)) Chain[U] {
	return Chain[U]{res: result.Bind(c.res, func(v T) result.Result[U, error] {
		return result.Of(try(v))
	})}
}

// Map transforms the success value from T to U, keeping the Err branch
// unchanged.
func Map[T, U any](c Chain[T], onOk func(T) U) Chain[U] {
	return Chain[U]{res: result.Map(c.res, onOk)}
}

// Finally collapses the chain into a final U via result.Match.
func Finally[T, U any](c Chain[T], onOk func(T) U, onErr func(error) U) U {
	return result.Match(c.res, onOk, onErr)
}
