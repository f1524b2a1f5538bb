// Package chain provides a fluent wrapper around Result[T, error] for
// building synchronous pipelines out of the result combinators.
//
// It keeps the API surface small and method-chained:
// - Start/FromValue/Try: begin a chain from a Result, a value or a (T, error) call
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Filter: transform or gate the success value
// - Ensure: trigger side effects without changing the result
// - And/Or: combine whole chains
// - Finally: collapse to a concrete value via both handlers
//
// Methods keep the value type fixed; the package-level Then, ThenTry, Map
// and Finally move a chain from T to U. The error channel is pinned to
// Go's error so ThenTry and Try can absorb ordinary (T, error) returns.
package chain
