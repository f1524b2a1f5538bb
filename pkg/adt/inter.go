package adt

// Getter defines an interface for wrappers that can expose their primary
// payload without panicking.
type Getter[T any] interface {
	// Get returns the payload and whether the wrapper holds one.
	Get() (T, bool)
}
