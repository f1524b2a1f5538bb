// Package either provides Either[L, R], a symmetric two-variant union with
// no success/failure connotation: a value is Left carrying an L or Right
// carrying an R. It deliberately has no conversion to option or result —
// neither side is the canonical winner.
//
// Key operations:
// - Left/Right: construct an Either
// - IsLeft/IsRight/IsLeftAnd/IsRightAnd/GetLeft/GetRight: inspect a side
// - UnwrapLeft/UnwrapRight/ExpectLeft/ExpectRight and the Or fallbacks
// - AndLeft/AndRight (value and fn variants): per-side combination
// - BindLeft/BindRight/MapLeft/MapRight: transform one side, re-wrap the other
// - ContainsLeft/ContainsRight: per-side equality probes
// - Match: exhaustive consumption with both branches supplied
//
// UnwrapLeft on a Right and UnwrapRight on a Left panic with
// adt.ErrWrongVariant; nothing else in the package can fail.
package either
