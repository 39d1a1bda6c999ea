package deq

// settings carries construction state while options are applied, before
// New validates the bound and seeds the deque.  hasBound distinguishes an
// unset bound from any user supplied value, so negative input is never
// mistaken for the internal unbounded marker.
type settings[T any] struct {
	maxLen   int
	hasBound bool
	items    []T
}

type Option[T any] func(s *settings[T])

// WithMaxLen bounds the deque to at most max elements.  Once full, pushing
// at one end evicts the element at the opposite end.  A negative max causes
// New to fail with ErrInvalidMaxLen; a max of zero yields a deque that
// stays permanently empty.
func WithMaxLen[T any](max int) Option[T] {
	return func(s *settings[T]) {
		s.maxLen = max
		s.hasBound = true
	}
}

// WithItems pre-populates the deque with the given elements, leftmost
// first.  If the deque is also bounded and the seed is longer than the
// bound, only the last max elements are retained.
func WithItems[T any](items ...T) Option[T] {
	return func(s *settings[T]) {
		s.items = append(s.items, items...)
	}
}
