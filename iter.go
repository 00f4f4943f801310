package revolver

import "iter"

// Do calls function f on each value, in forward order.
// If f returns false, Do stops the iteration.
// f must not change r.
func (r *Revolver[V]) Do(f func(v V) bool) {
	if r.len == 0 {
		return
	}

	for e := r.root.next; e != &r.root; e = e.next {
		if !f(e.Value) {
			return
		}
	}
}

// All returns an iterator over the values, from the first to the last element.
// Iterating does not move the cursor.
func (r *Revolver[V]) All() iter.Seq[V] {
	return r.Do
}

// Backward returns an iterator over the values, from the last to the first element.
// Iterating does not move the cursor.
func (r *Revolver[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		if r.len == 0 {
			return
		}

		for e := r.root.prev; e != &r.root; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns the values in forward order.
func (r *Revolver[V]) Values() []V {
	values := make([]V, 0, r.len)

	r.Do(func(v V) bool {
		values = append(values, v)
		return true
	})

	return values
}
