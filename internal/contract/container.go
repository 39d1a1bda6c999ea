package contract

// Container is the minimal surface of a double ended queue: push and pop
// at either end plus a length query.  Callers that only need this surface
// can accept a Container rather than the concrete ring buffer type.
type Container[T any] interface {
	PushLeft(element T)
	PushRight(element T)
	PopLeft() (T, error)
	PopRight() (T, error)
	Len() int
}
