package deq

import "iter"

// Iterator traverses a deque left to right.  It is fail fast: any
// structural mutation of the deque (push, pop, clear) during traversal
// stops the iterator and surfaces ErrIteratorInvalidated via Err.
// Re-invoking Deque.Iterator starts a fresh traversal.
type Iterator[T any] struct {
	d         *Deque[T]
	idx       int
	mutations uint64
	current   T
	err       error
}

// Iterator returns a new iterator positioned before the leftmost element.
func (d *Deque[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{d: d, mutations: d.mutations}
}

// Next advances to the next element, reporting whether one exists.
// It returns false once the traversal is exhausted or invalidated;
// check Err to distinguish the two.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.mutations != it.d.mutations {
		var zero T
		it.current = zero
		it.err = ErrIteratorInvalidated
		return false
	}
	if it.idx >= it.d.size {
		return false
	}
	it.current = it.d.at(it.idx)
	it.idx++
	return true
}

// Value returns the element the iterator currently points at.  It is only
// valid after a Next call that returned true.
func (it *Iterator[T]) Value() T {
	return it.current
}

// Err returns ErrIteratorInvalidated if the deque was mutated during the
// traversal, otherwise nil.
func (it *Iterator[T]) Err() error {
	return it.err
}

// All returns a left to right traversal usable with range.  Like Iterator
// it stops early if the deque is structurally mutated mid range, but a
// push iterator cannot report the reason; use Iterator when the caller
// must distinguish exhaustion from invalidation.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		mutations := d.mutations
		for i := 0; i < d.size; i++ {
			if d.mutations != mutations || !yield(d.at(i)) {
				return
			}
		}
	}
}
