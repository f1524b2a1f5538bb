// Package adt holds the shared core of the wrapper types defined in its
// subpackages: option, result and either. It defines the two error kinds a
// wrapper can raise, the nil probe behind the non-nil payload invariant, the
// Pair carrier used by zip operations and the Getter capability interface.
//
// Key constructs:
// - ErrNilValue/ErrWrongVariant: the only two failure kinds in the module
// - IsNil: reports whether a payload is a nil pointer-like value
// - Pair/PairOf: two-element carrier for Zip/Unzip
// - Getter/Values: uniform non-panicking access to a present payload
package adt
