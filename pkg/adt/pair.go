package adt

import "fmt"

// Pair is the two-element carrier produced by zip operations. It is an
// immutable value; equality and comparability follow its element types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair from its two elements.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
