package list

import "iter"

// Cursor walks a List from front to back without modifying it.
//
// A cursor must not be used after its list has been structurally
// modified (any push, insert, pop, move, reverse, concat or clear).
// Doing so panics with ErrModified. Assigning Elem.Value is allowed.
type Cursor[V any] struct {
	l   *List[V]
	e   *Elem[V]
	mod uint64
}

// ReverseCursor walks a List from back to front. It has the same
// restrictions as Cursor.
type ReverseCursor[V any] struct {
	l   *List[V]
	e   *Elem[V]
	mod uint64
}

// Iter returns a cursor positioned at the front of l.
func (l *List[V]) Iter() *Cursor[V] {
	return &Cursor[V]{l: l, e: l.front, mod: l.mod}
}

// RevIter returns a cursor positioned at the back of l.
func (l *List[V]) RevIter() *ReverseCursor[V] {
	return &ReverseCursor[V]{l: l, e: l.back, mod: l.mod}
}

// Next returns the current value and advances the cursor. ok is false
// once the cursor is exhausted.
func (c *Cursor[V]) Next() (v V, ok bool) {
	c.l.checkMod(c.mod)
	if c.e == nil {
		return v, false
	}
	v = c.e.Value
	c.e = c.e.next
	return v, true
}

// Next returns the current value and moves the cursor towards the front.
func (c *ReverseCursor[V]) Next() (v V, ok bool) {
	c.l.checkMod(c.mod)
	if c.e == nil {
		return v, false
	}
	v = c.e.Value
	c.e = c.e.prev
	return v, true
}

func (l *List[V]) checkMod(mod uint64) {
	if l.mod != mod {
		panic(ErrModified)
	}
}

// All returns an iterator over the values of l from front to back.
// The loop body must not structurally modify l.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		c := l.Iter()
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of l from back to front.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		c := l.RevIter()
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
