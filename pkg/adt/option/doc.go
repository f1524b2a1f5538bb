// Package option provides Option[T], a value that is either present (Some)
// or absent (None), replacing nil-based "maybe missing" states with an
// explicit wrapper the caller has to branch on.
//
// Key operations:
// - Some/SomeUnsafe/None/FromPtr: construct an Option
// - IsSome/IsNone/IsSomeAnd/Get: inspect without panicking
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse: take the payload out
// - Filter/And/AndThen/Or/OrElse/Xor: boolean-style combination
// - Map/MapOr/MapOrElse: transform or fold the payload
// - Zip/ZipWith/Unzip/Contains: pairing and equality helpers
// - Match: exhaustive consumption with both branches supplied
//
// Some rejects nil payloads; Unwrap and Expect panic when the option is
// absent. Every other operation is total. For the success/failure flavored
// union see package result, which also hosts the conversions between the
// two.
package option
