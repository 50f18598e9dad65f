package list

// Elem is an element of a List. It belongs to at most one list at a time.
type Elem[V any] struct {
	prev, next *Elem[V]
	list       *List[V]

	Value V
}

// NewElem returns a free element holding v. It can be linked into a list
// with PushFront or PushBack.
func NewElem[V any](v V) *Elem[V] {
	return &Elem[V]{Value: v}
}

// Next returns the next element or nil.
func (e *Elem[V]) Next() *Elem[V] {
	return e.next
}

// Prev returns the previous element or nil.
func (e *Elem[V]) Prev() *Elem[V] {
	return e.prev
}

func mustBeFreeElem[V any](e *Elem[V]) {
	if e.prev != nil || e.next != nil || e.list != nil {
		panic("element is in use")
	}
}
