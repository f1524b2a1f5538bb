// Package result provides Result[V, E], a two-variant union tagged
// success/failure: Ok carries a V, Err carries an E. The error channel is a
// type parameter, so it is not pinned to Go's error interface, though
// E = error is the common instantiation (see Of and package chain).
//
// Key operations:
// - Ok/Err/Of: construct a Result, Of adapting Go's (V, error) returns
// - IsOk/IsErr/IsOkAnd/IsErrAnd/Get/GetErr: inspect either channel
// - Unwrap/UnwrapErr/Expect/ExpectErr and the Or/OrElse fallbacks
// - And/AndThen/Or/OrElse/Filter: boolean-style combination
// - Map/Bind and MapErr/BindErr: transform one channel, re-wrap the other
// - MapOr/MapOrElse/Match: fold to a plain value
// - ToOption/FromOption: the only cross-type conversions in the module
//
// Unwrap on an Err and UnwrapErr on an Ok panic with adt.ErrWrongVariant;
// nothing else in the package can fail.
package result
