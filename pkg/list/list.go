package list

import (
	"fmt"
	"iter"
)

// List is a doubly linked list. The zero value is an empty list ready to use.
//
// A List is not safe for concurrent use. A List must not be copied after
// first use: its elements point back to it.
type List[V any] struct {
	front, back *Elem[V]
	length      int

	// mod counts structural mutations. Cursors compare it to detect
	// use after the list was changed under them.
	mod uint64
}

func New[V any]() *List[V] {
	return &List[V]{}
}

// FromSlice builds a list holding values in order.
func FromSlice[V any](values []V) *List[V] {
	l := New[V]()
	l.AppendSlice(values...)
	return l
}

// FromSeq builds a list by appending every value produced by seq.
func FromSeq[V any](seq iter.Seq[V]) *List[V] {
	l := New[V]()
	l.Extend(seq)
	return l
}

func (l *List[V]) Front() *Elem[V] {
	return l.front
}

func (l *List[V]) Back() *Elem[V] {
	return l.back
}

func (l *List[V]) Len() int {
	return l.length
}

func (l *List[V]) Append(v V) *Elem[V] {
	return l.PushBack(NewElem(v))
}

func (l *List[V]) Prepend(v V) *Elem[V] {
	return l.PushFront(NewElem(v))
}

func (l *List[V]) AppendSlice(values ...V) {
	for _, v := range values {
		l.Append(v)
	}
}

// Extend appends every value produced by seq. seq must not be derived
// from l itself.
func (l *List[V]) Extend(seq iter.Seq[V]) {
	for v := range seq {
		l.Append(v)
	}
}

// Insert inserts v before the element currently at pos. A pos that is
// negative or not less than Len appends v at the back.
func (l *List[V]) Insert(v V, pos int) *Elem[V] {
	e := NewElem(v)
	if pos < 0 || pos >= l.length {
		return l.PushBack(e)
	}
	l.insertBefore(e, l.elemAt(pos))
	return e
}

func (l *List[V]) PushFront(e *Elem[V]) *Elem[V] {
	mustBeFreeElem(e)
	l.length++
	l.mod++
	e.list = l

	if l.front == nil {
		l.front = e
		l.back = e
		return e
	}

	e.next = l.front
	l.front.prev = e
	l.front = e
	return e
}

func (l *List[V]) PushBack(e *Elem[V]) *Elem[V] {
	mustBeFreeElem(e)
	l.length++
	l.mod++
	e.list = l

	if l.back == nil {
		l.front = e
		l.back = e
		return e
	}

	e.prev = l.back
	l.back.next = e
	l.back = e
	return e
}

func (l *List[V]) insertBefore(e, mark *Elem[V]) {
	mustBeFreeElem(e)
	l.length++
	l.mod++
	e.list = l

	e.prev = mark.prev
	e.next = mark
	if mark.prev != nil {
		mark.prev.next = e
	} else {
		l.front = e
	}
	mark.prev = e
}

// MoveToBack moves an existing element to the back in O(1).
// Does not change length.
func (l *List[V]) MoveToBack(e *Elem[V]) {
	l.mustOwn(e)
	if l.back == e {
		return
	}
	l.mod++
	l.unlink(e)

	// attach at back
	e.prev = l.back
	l.back.next = e
	l.back = e
}

// MoveToFront moves an existing element to the front in O(1).
// Does not change length.
func (l *List[V]) MoveToFront(e *Elem[V]) {
	l.mustOwn(e)
	if l.front == e {
		return
	}
	l.mod++
	l.unlink(e)

	e.next = l.front
	l.front.prev = e
	l.front = e
}

func (l *List[V]) PopElem(e *Elem[V]) *Elem[V] {
	l.mustOwn(e)
	l.length--
	l.mod++
	l.unlink(e)
	e.list = nil
	return e
}

// Remove unlinks e from l and returns its value.
func (l *List[V]) Remove(e *Elem[V]) V {
	return l.PopElem(e).Value
}

func (l *List[V]) RemoveAt(i int) (v V, err error) {
	e, err := l.NthElem(i)
	if err != nil {
		return v, err
	}
	return l.Remove(e), nil
}

func (l *List[V]) PopFront() (v V, err error) {
	if l.front == nil {
		return v, ErrEmptyList
	}
	return l.Remove(l.front), nil
}

func (l *List[V]) PopBack() (v V, err error) {
	if l.back == nil {
		return v, ErrEmptyList
	}
	return l.Remove(l.back), nil
}

// unlink detaches e from its neighbours, fixing front and back.
// It leaves e.list and l.length alone.
func (l *List[V]) unlink(e *Elem[V]) {
	p, n := e.prev, e.next

	if p != nil {
		p.next = n
	} else {
		l.front = n
	}

	if n != nil {
		n.prev = p
	} else {
		l.back = p
	}

	e.prev = nil
	e.next = nil
}

func (l *List[V]) mustOwn(e *Elem[V]) {
	if e.list != l {
		panic("elem does not belong to this list")
	}
}

// NthElem returns the element at index i counting from the front.
// The walk starts from whichever end is nearer.
func (l *List[V]) NthElem(i int) (*Elem[V], error) {
	if i < 0 || i >= l.length {
		return nil, &IndexError{Index: i, Len: l.length}
	}
	return l.elemAt(i), nil
}

func (l *List[V]) Nth(i int) (v V, err error) {
	e, err := l.NthElem(i)
	if err != nil {
		return v, err
	}
	return e.Value, nil
}

// At is the indexing form of Nth. Like indexing a slice, it panics if i
// is out of range. The panic value is an *IndexError.
func (l *List[V]) At(i int) V {
	e, err := l.NthElem(i)
	if err != nil {
		panic(err)
	}
	return e.Value
}

// elemAt requires 0 <= i < l.length.
func (l *List[V]) elemAt(i int) *Elem[V] {
	if i < l.length/2 {
		e := l.front
		for ; i > 0; i-- {
			e = e.next
		}
		return e
	}

	e := l.back
	for j := l.length - 1; j > i; j-- {
		e = e.prev
	}
	return e
}

func (l *List[V]) First() (v V, err error) {
	if l.front == nil {
		return v, ErrEmptyList
	}
	return l.front.Value, nil
}

func (l *List[V]) Last() (v V, err error) {
	if l.back == nil {
		return v, ErrEmptyList
	}
	return l.back.Value, nil
}

// Reverse reverses the order of the elements in place.
func (l *List[V]) Reverse() {
	// After the swap, e.prev holds the old successor.
	for e := l.front; e != nil; e = e.prev {
		e.prev, e.next = e.next, e.prev
	}
	l.front, l.back = l.back, l.front
	l.mod++
}

// Concat moves all elements of other to the back of l. other is left
// empty. Elements are relinked, not copied, so pointers to them stay valid
// and now belong to l.
func (l *List[V]) Concat(other *List[V]) {
	if other == l {
		panic("cannot concat a list with itself")
	}
	if other.front == nil {
		return
	}

	for e := other.front; e != nil; e = e.next {
		e.list = l
	}

	if l.back == nil {
		l.front = other.front
	} else {
		l.back.next = other.front
		other.front.prev = l.back
	}
	l.back = other.back
	l.length += other.length
	l.mod++

	other.front = nil
	other.back = nil
	other.length = 0
	other.mod++
}

// Clear removes all elements. Each removed element is unlinked so it no
// longer keeps the rest of the chain alive.
func (l *List[V]) Clear() {
	e := l.front
	for e != nil {
		next := e.next
		e.prev, e.next, e.list = nil, nil, nil
		e = next
	}
	l.front = nil
	l.back = nil
	l.length = 0
	l.mod++
}

// Cloner is implemented by values that know how to deep copy themselves.
// Clone uses it when the element type provides it.
type Cloner[V any] interface {
	Clone() V
}

// Clone returns a new list with the same values in the same order. Values
// implementing Cloner[V] are copied with their Clone method, everything
// else is copied by assignment.
func (l *List[V]) Clone() *List[V] {
	return l.CloneFunc(cloneValue[V])
}

// CloneFunc returns a new list holding f(v) for every value v of l.
func (l *List[V]) CloneFunc(f func(V) V) *List[V] {
	n := New[V]()
	for e := l.front; e != nil; e = e.next {
		n.PushBack(NewElem(f(e.Value)))
	}
	return n
}

func cloneValue[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}

func (l *List[V]) Slice() []V {
	s := make([]V, 0, l.length)
	for e := l.front; e != nil; e = e.next {
		s = append(s, e.Value)
	}
	return s
}

func (l *List[V]) String() string {
	return fmt.Sprint(l.Slice())
}
