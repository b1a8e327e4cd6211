package vector

import "cmp"

// Cursor is a random-access position over a vector's live elements.
//
// Forward cursors run from Begin (index 0) to End (index Len()). Reverse
// cursors run from RBegin (index Len()-1) to REnd (index -1). A cursor is a
// small value: copy it freely.
//
// Any operation that reallocates or shifts elements (growth, Insert, Erase,
// EraseRange, Resize, ShrinkToFit, Release) invalidates existing cursors.
// This is not detected; using an invalidated cursor yields unspecified
// elements. Dereferencing a position outside [0, Len()) reports an IndexError.
//
// Comparing or measuring cursors of different vectors or directions is
// meaningless.
type Cursor[T any] struct {
	v        *Vector[T]
	pos      int
	reverse  bool
	readOnly bool
}

// Begin returns a mutable cursor at the first element.
func (v *Vector[T]) Begin() Cursor[T] { return Cursor[T]{v: v, pos: 0} }

// End returns a mutable cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] { return Cursor[T]{v: v, pos: v.size} }

// CBegin returns a read-only cursor at the first element.
func (v *Vector[T]) CBegin() Cursor[T] { return Cursor[T]{v: v, pos: 0, readOnly: true} }

// CEnd returns a read-only cursor one past the last element.
func (v *Vector[T]) CEnd() Cursor[T] { return Cursor[T]{v: v, pos: v.size, readOnly: true} }

// RBegin returns a mutable reverse cursor at the last element.
func (v *Vector[T]) RBegin() Cursor[T] { return Cursor[T]{v: v, pos: v.size - 1, reverse: true} }

// REnd returns a mutable reverse cursor one before the first element.
func (v *Vector[T]) REnd() Cursor[T] { return Cursor[T]{v: v, pos: -1, reverse: true} }

// CRBegin returns a read-only reverse cursor at the last element.
func (v *Vector[T]) CRBegin() Cursor[T] {
	return Cursor[T]{v: v, pos: v.size - 1, reverse: true, readOnly: true}
}

// CREnd returns a read-only reverse cursor one before the first element.
func (v *Vector[T]) CREnd() Cursor[T] {
	return Cursor[T]{v: v, pos: -1, reverse: true, readOnly: true}
}

// Get dereferences the cursor.
func (c Cursor[T]) Get() (T, error) {
	if c.v == nil || c.pos < 0 || c.pos >= c.v.size {
		var zero T
		return zero, indexError("cursor get", c.pos, c.len())
	}
	return c.v.data[c.pos], nil
}

// Set replaces the element under the cursor. Read-only cursors refuse.
func (c Cursor[T]) Set(x T) error {
	if c.readOnly {
		return ErrReadOnly
	}
	if c.v == nil || c.pos < 0 || c.pos >= c.v.size {
		return indexError("cursor set", c.pos, c.len())
	}
	return c.v.Set(c.pos, x)
}

// Next returns the cursor advanced by one step in its direction.
func (c Cursor[T]) Next() Cursor[T] { return c.Add(1) }

// Prev returns the cursor moved back by one step.
func (c Cursor[T]) Prev() Cursor[T] { return c.Add(-1) }

// Incr advances c in place and returns its previous position.
func (c *Cursor[T]) Incr() Cursor[T] {
	prev := *c
	*c = c.Add(1)
	return prev
}

// Decr moves c back in place and returns its previous position.
func (c *Cursor[T]) Decr() Cursor[T] {
	prev := *c
	*c = c.Add(-1)
	return prev
}

// Add returns the cursor moved n steps in its direction.
func (c Cursor[T]) Add(n int) Cursor[T] {
	if c.reverse {
		c.pos -= n
	} else {
		c.pos += n
	}
	return c
}

// Sub returns the cursor moved n steps against its direction.
func (c Cursor[T]) Sub(n int) Cursor[T] { return c.Add(-n) }

// Distance returns the number of steps from o to c.
func (c Cursor[T]) Distance(o Cursor[T]) int {
	if c.reverse {
		return o.pos - c.pos
	}
	return c.pos - o.pos
}

// Compare orders cursors by traversal order: -1 if c comes before o, +1 if
// after, 0 if they are at the same position.
func (c Cursor[T]) Compare(o Cursor[T]) int {
	if c.reverse {
		return cmp.Compare(o.pos, c.pos)
	}
	return cmp.Compare(c.pos, o.pos)
}

// Less reports whether c comes before o.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.Compare(o) < 0 }

// Equal reports whether c and o are at the same position of the same vector.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.v == o.v && c.pos == o.pos && c.reverse == o.reverse
}

// Index returns the element index the cursor designates.
func (c Cursor[T]) Index() int { return c.pos }

// Reverse reports whether c traverses from back to front.
func (c Cursor[T]) Reverse() bool { return c.reverse }

// ReadOnly reports whether writes through c are refused.
func (c Cursor[T]) ReadOnly() bool { return c.readOnly }

// Base converts a reverse cursor to the forward cursor one position after
// it, so that RBegin().Base() == End() and REnd().Base() == Begin(). A
// forward cursor is returned unchanged.
func (c Cursor[T]) Base() Cursor[T] {
	if !c.reverse {
		return c
	}
	return Cursor[T]{v: c.v, pos: c.pos + 1, readOnly: c.readOnly}
}

func (c Cursor[T]) len() int {
	if c.v == nil {
		return 0
	}
	return c.v.size
}
