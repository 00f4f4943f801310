package revolver

// element is a ring node. The sentinel is an element too; it never holds data.
type element[V any] struct {
	next, prev *element[V]
	Value      V
}

// link inserts s after e.
func (e *element[V]) link(s *element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// unlink removes e from its ring and clears it.
func (e *element[V]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil

	var zero V
	e.Value = zero
}
