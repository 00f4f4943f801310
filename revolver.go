/*
Package revolver implements a circular doubly linked list with a movable cursor.

Elements are inserted and removed relative to the currently selected element.
Moving the cursor past either end wraps around to the other end.
*/
package revolver

import (
	"fmt"
	"strings"
)

// Revolver is a circular doubly linked list with a cursor.
//
// The zero value is a ready to use empty list.
// A Revolver is not safe for concurrent use.
type Revolver[V any] struct {
	// root is the sentinel. root.next is the first element and root.prev the last.
	root element[V]
	// cursor is the currently selected element. It is nil if and only if len == 0.
	cursor *element[V]
	len    int
}

// New creates a revolver and inserts values in order.
// The last value becomes the current element.
func New[V any](values ...V) *Revolver[V] {
	r := &Revolver[V]{}
	r.lazyInit()

	for _, v := range values {
		r.Insert(v)
	}

	return r
}

func (r *Revolver[V]) lazyInit() {
	if r.root.next == nil {
		r.root.next = &r.root
		r.root.prev = &r.root
	}
}

// Len returns the number of elements.
func (r *Revolver[V]) Len() int {
	return r.len
}

// IsEmpty reports whether the revolver has no elements.
func (r *Revolver[V]) IsEmpty() bool {
	return r.len == 0
}

// Insert adds v after the current element and selects it.
// On an empty revolver v becomes the only element.
func (r *Revolver[V]) Insert(v V) {
	r.lazyInit()

	mark := r.cursor
	if mark == nil {
		mark = &r.root
	}

	e := &element[V]{Value: v}
	mark.link(e)

	r.cursor = e
	r.len++
}

// Remove removes the current element and returns its value.
// The element following the removed one becomes current, wrapping
// around to the first element. Remove is a no-op on an empty revolver.
func (r *Revolver[V]) Remove() (value V, ok bool) {
	if r.len == 0 {
		return value, false
	}

	e := r.cursor
	next := e.next
	value = e.Value

	e.unlink()
	r.len--

	switch {
	case r.len == 0:
		r.cursor = nil
	case next == &r.root:
		r.cursor = r.root.next
	default:
		r.cursor = next
	}

	return value, true
}

// Clear removes all elements.
func (r *Revolver[V]) Clear() {
	if r.len == 0 {
		return
	}

	var zero V

	for e := r.root.next; e != &r.root; {
		next := e.next
		e.next = nil
		e.prev = nil
		e.Value = zero
		e = next
	}

	r.root.next = &r.root
	r.root.prev = &r.root
	r.cursor = nil
	r.len = 0
}

// Current returns the value of the current element.
// It returns false if the revolver is empty.
func (r *Revolver[V]) Current() (value V, ok bool) {
	if r.len == 0 {
		return value, false
	}
	return r.cursor.Value, true
}

// SetCurrent replaces the value of the current element.
// It returns ErrEmpty if the revolver is empty.
func (r *Revolver[V]) SetCurrent(v V) error {
	if r.len == 0 {
		return ErrEmpty
	}
	r.cursor.Value = v
	return nil
}

// Next selects the next element. The last element wraps to the first.
func (r *Revolver[V]) Next() {
	if r.len == 0 {
		return
	}
	if r.cursor = r.cursor.next; r.cursor == &r.root {
		r.cursor = r.root.next
	}
}

// Prev selects the previous element. The first element wraps to the last.
func (r *Revolver[V]) Prev() {
	if r.len == 0 {
		return
	}
	if r.cursor = r.cursor.prev; r.cursor == &r.root {
		r.cursor = r.root.prev
	}
}

// Move moves the cursor forward by delta elements, or backwards if delta is negative.
func (r *Revolver[V]) Move(delta int) {
	if r.len == 0 {
		return
	}

	delta %= r.len

	switch {
	case delta > 0:
		for i := 0; i < delta; i++ {
			r.Next()
		}

	case delta < 0:
		for i := 0; i > delta; i-- {
			r.Prev()
		}
	}
}

// First selects the first element.
func (r *Revolver[V]) First() {
	if r.len > 0 {
		r.cursor = r.root.next
	}
}

// Last selects the last element.
func (r *Revolver[V]) Last() {
	if r.len > 0 {
		r.cursor = r.root.prev
	}
}

// IsFirst reports whether the first element is selected.
// It is false for an empty revolver.
func (r *Revolver[V]) IsFirst() bool {
	return r.len > 0 && r.cursor == r.root.next
}

// IsLast reports whether the last element is selected.
// It is false for an empty revolver.
func (r *Revolver[V]) IsLast() bool {
	return r.len > 0 && r.cursor == r.root.prev
}

// Map replaces every value with the result of f, in forward order.
// The cursor is not moved.
func (r *Revolver[V]) Map(f func(V) V) {
	if r.len == 0 {
		return
	}

	for e := r.root.next; e != &r.root; e = e.next {
		e.Value = f(e.Value)
	}
}

// String returns the values formatted as "(a, b, c)".
func (r *Revolver[V]) String() string {
	var b strings.Builder

	b.WriteByte('(')

	i := 0
	r.Do(func(v V) bool {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
		i++
		return true
	})

	b.WriteByte(')')

	return b.String()
}
