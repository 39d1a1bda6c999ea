// deq is a package that provides a generic double ended queue backed by a
// growable ring buffer.  Pushing and popping at either end is O(1) amortized.
//
// A Deque is single owner by design: it performs no internal locking and no
// operation blocks.  Callers that share an instance across goroutines must
// guard it with their own synchronisation.
package deq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/symonk/deq/internal/contract"
)

var (
	// ErrEmptyDeque is returned when popping or peeking an empty deque.
	ErrEmptyDeque = errors.New("deque is empty")
	// ErrInvalidMaxLen is returned by New when the configured bound is negative.
	ErrInvalidMaxLen = errors.New("deque max length must not be negative")
	// ErrIteratorInvalidated is reported by an Iterator whose deque was
	// structurally mutated mid traversal.
	ErrIteratorInvalidated = errors.New("deque mutated during iteration")
)

// unbounded is the internal marker for a deque with no length bound.
const unbounded = -1

// minCapacity is the smallest backing buffer allocated on first push.
// Must be a power of two.
const minCapacity = 8

// Deque is a double ended queue of elements of type T.
//
// Elements occupy buf[head, head+size) modulo len(buf), and len(buf) is
// always zero or a power of two so that index wrapping is a mask.
// When a bound is set via WithMaxLen, pushing onto a full deque silently
// evicts one element from the opposite end.
type Deque[T any] struct {
	buf    []T
	head   int
	size   int
	maxlen int
	// mutations counts structural changes, used by iterators to fail fast.
	mutations uint64
}

// Ensure Deque satisfies the storage container contract.
var _ contract.Container[int] = (*Deque[int])(nil)

// New instantiates a Deque and applies the given functional options.
// It fails with ErrInvalidMaxLen when a negative bound is supplied; no
// partial deque is produced on failure.
func New[T any](opts ...Option[T]) (*Deque[T], error) {
	var s settings[T]
	for _, opt := range opts {
		opt(&s)
	}
	if s.hasBound && s.maxLen < 0 {
		return nil, ErrInvalidMaxLen
	}
	d := &Deque[T]{maxlen: unbounded}
	if s.hasBound {
		d.maxlen = s.maxLen
	}
	// Seeding through PushRight applies the bounded eviction policy, so an
	// oversized seed keeps only its last maxlen elements.
	for _, v := range s.items {
		d.PushRight(v)
	}
	return d, nil
}

// Len returns the current number of elements.
func (d *Deque[T]) Len() int {
	return d.size
}

// MaxLen returns the configured bound, or -1 when the deque is unbounded.
func (d *Deque[T]) MaxLen() int {
	return d.maxlen
}

// Cap returns the current capacity of the backing buffer.
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.size == 0
}

// Full reports whether a bounded deque is at its maximum length.
// An unbounded deque is never full.
func (d *Deque[T]) Full() bool {
	return d.maxlen != unbounded && d.size == d.maxlen
}

// PushRight inserts element as the new rightmost element.  If the deque is
// bounded and full the leftmost element is evicted first; with a bound of
// zero the element is silently dropped.
func (d *Deque[T]) PushRight(element T) {
	if d.maxlen == 0 {
		return
	}
	if d.Full() {
		_, _ = d.PopLeft()
	}
	d.grow()
	d.buf[(d.head+d.size)&d.mask()] = element
	d.size++
	d.mutations++
}

// PushLeft inserts element as the new leftmost element.  If the deque is
// bounded and full the rightmost element is evicted first; with a bound of
// zero the element is silently dropped.
func (d *Deque[T]) PushLeft(element T) {
	if d.maxlen == 0 {
		return
	}
	if d.Full() {
		_, _ = d.PopRight()
	}
	d.grow()
	d.head = (d.head - 1) & d.mask()
	d.buf[d.head] = element
	d.size++
	d.mutations++
}

// PopRight removes and returns the rightmost element.
func (d *Deque[T]) PopRight() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmptyDeque
	}
	i := (d.head + d.size - 1) & d.mask()
	element := d.buf[i]
	d.buf[i] = zero
	d.size--
	d.mutations++
	return element, nil
}

// PopLeft removes and returns the leftmost element.
func (d *Deque[T]) PopLeft() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmptyDeque
	}
	element := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) & d.mask()
	d.size--
	d.mutations++
	return element, nil
}

// PeekRight returns the rightmost element without removing it.
func (d *Deque[T]) PeekRight() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrEmptyDeque
	}
	return d.at(d.size - 1), nil
}

// PeekLeft returns the leftmost element without removing it.
func (d *Deque[T]) PeekLeft() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrEmptyDeque
	}
	return d.at(0), nil
}

// Extend pushes each element onto the right end in order, applying the
// bounded eviction policy element by element.
func (d *Deque[T]) Extend(elements ...T) {
	for _, v := range elements {
		d.PushRight(v)
	}
}

// ExtendLeft pushes each element onto the left end in order.  As with
// repeated PushLeft calls, the elements end up reversed at the front.
func (d *Deque[T]) ExtendLeft(elements ...T) {
	for _, v := range elements {
		d.PushLeft(v)
	}
}

// Rotate rotates the deque n steps to the right; negative n rotates left.
// Rotating one step right moves the rightmost element to the front.
func (d *Deque[T]) Rotate(n int) {
	if d.size <= 1 {
		return
	}
	n %= d.size
	for ; n > 0; n-- {
		v, _ := d.PopRight()
		d.PushLeft(v)
	}
	for ; n < 0; n++ {
		v, _ := d.PopLeft()
		d.PushRight(v)
	}
}

// Clear removes every element but keeps the allocated capacity.
// Element slots are zeroed so released values can be collected.
func (d *Deque[T]) Clear() {
	if d.size == 0 {
		return
	}
	clear(d.buf)
	d.head = 0
	d.size = 0
	d.mutations++
}

// Clone returns an independent copy of the deque with the same contents
// and bound.  Mutating either deque never affects the other.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{maxlen: d.maxlen, head: d.head, size: d.size}
	if d.buf != nil {
		c.buf = make([]T, len(d.buf))
		copy(c.buf, d.buf)
	}
	return c
}

// ToSlice materialises the current contents as a left to right snapshot.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.size)
	for i := range out {
		out[i] = d.at(i)
	}
	return out
}

// String renders the contents left to right as "[a, b, c]".  This is a
// debugging convenience, not a stable format.
func (d *Deque[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < d.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", d.at(i))
	}
	b.WriteByte(']')
	return b.String()
}

// at returns the element i positions from the left, without bounds checks.
func (d *Deque[T]) at(i int) T {
	return d.buf[(d.head+i)&d.mask()]
}

func (d *Deque[T]) mask() int {
	return len(d.buf) - 1
}

// grow doubles the backing buffer when it is full, unwrapping the ring so
// the contents start at index zero.
func (d *Deque[T]) grow() {
	if d.size < len(d.buf) {
		return
	}
	newCap := minCapacity
	if len(d.buf) > 0 {
		newCap = len(d.buf) * 2
	}
	buf := make([]T, newCap)
	n := copy(buf, d.buf[d.head:])
	copy(buf[n:], d.buf[:d.head])
	d.head = 0
	d.buf = buf
}
