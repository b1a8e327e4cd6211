package vector

import "github.com/joshuapare/vectorkit/vector/alloc"

// Clone returns a deep copy of v that shares its allocator. Elements are
// copied through the Cloner hook when T implements it. If a copy fails, the
// partial clone is torn down and nothing is leaked.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.allocator(), log: v.log}
	capacity := v.size
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	block, err := c.duplicate("clone", v.data[:v.size], capacity)
	if err != nil {
		return nil, err
	}
	c.data = block
	c.size = v.size
	return c, nil
}

// CopyAssign replaces v's elements with deep copies of src's, keeping v's own
// allocator. On failure v is unchanged.
func (v *Vector[T]) CopyAssign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size == 0 {
		v.Clear()
		return nil
	}
	block, err := v.duplicate("copy assign", src.data[:src.size], src.size)
	if err != nil {
		return err
	}
	v.Release()
	v.data = block
	v.size = src.size
	return nil
}

// MoveAssign transfers src's elements into v and leaves src empty with no
// storage. When the allocators are interchangeable the block itself changes
// hands; otherwise the elements are relocated into a block from v's
// allocator. On failure both vectors are unchanged.
func (v *Vector[T]) MoveAssign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if alloc.Equal(v.allocator(), src.allocator()) {
		v.Release()
		v.data, v.size = src.data, src.size
		src.data, src.size = nil, 0
		return nil
	}
	if src.size == 0 {
		v.Clear()
		src.Release()
		return nil
	}
	block, err := v.allocateBlock(src.size)
	if err != nil {
		return err
	}
	if i, err := v.relocate(block, src.data[:src.size]); err != nil {
		clear(block[:i])
		v.allocator().Deallocate(block)
		return &ConstructionError{Op: "move assign", Index: i, Err: err}
	}
	v.Release()
	v.data = block
	v.size = src.size

	// src's elements now live in v: zero them instead of destroying them.
	clear(src.data[:src.size])
	src.allocator().Deallocate(src.data)
	src.data, src.size = nil, 0
	return nil
}

// Take transfers ownership of v's storage to a new vector and leaves v empty
// with no storage. Releasing the moved-from vector is a no-op.
func (v *Vector[T]) Take() *Vector[T] {
	moved := &Vector[T]{
		data:  v.data,
		size:  v.size,
		alloc: v.allocator(),
		log:   v.log,
	}
	v.data, v.size = nil, 0
	return moved
}
