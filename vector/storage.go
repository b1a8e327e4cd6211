package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/joshuapare/vectorkit/internal/buf"
	"github.com/joshuapare/vectorkit/vector/alloc"
)

// allocator returns the vector's allocator, defaulting the zero value to the heap.
func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		v.alloc = alloc.NewHeap[T]()
	}
	return v.alloc
}

// allocateBlock requests exactly n slots. Every failure matches ErrAllocation.
func (v *Vector[T]) allocateBlock(n int) ([]T, error) {
	a := v.allocator()
	if limit := a.MaxSize(); n < 0 || n > limit {
		return nil, fmt.Errorf("%w: %d slots (max %d)", alloc.ErrTooLarge, n, limit)
	}
	block, err := a.Allocate(n)
	if err != nil {
		if !errors.Is(err, ErrAllocation) {
			err = fmt.Errorf("%w: %w", ErrAllocation, err)
		}
		return nil, err
	}
	if len(block) != n {
		a.Deallocate(block)
		return nil, fmt.Errorf("%w: allocator returned %d of %d slots", ErrAllocation, len(block), n)
	}
	return block, nil
}

// nextCapacity applies the growth policy: max(minCap, cap + cap/2 + 1),
// starting from 1 for an empty block and clamped to the allocator's MaxSize.
func (v *Vector[T]) nextCapacity(minCap int) (int, error) {
	limit := v.allocator().MaxSize()
	if minCap > limit {
		return 0, fmt.Errorf("%w: need %d slots (max %d)", alloc.ErrTooLarge, minCap, limit)
	}
	grown := 1
	if c := len(v.data); c > 0 {
		g, ok := buf.AddOverflowSafe(c, c/2+1)
		if !ok {
			g = math.MaxInt
		}
		grown = g
	}
	return min(max(minCap, grown), limit), nil
}

// fillFunc constructs new elements into the gap of a fresh block. On error it
// must have torn down whatever it placed.
type fillFunc[T any] func(gap []T) error

// gapKind says who owns what a fillFunc placed if realloc has to roll back.
type gapKind int

const (
	gapMoved  gapKind = iota // caller's values: zero the slots
	gapCopied                // vector-made copies: destroy them
)

// realloc moves the live elements into a fresh block of newCap slots, leaving
// gap slots at pos for fill. Nothing is committed until every element has a
// slot in the new block: on any failure the new block is released and the
// vector is exactly as it was.
func (v *Vector[T]) realloc(op string, newCap, pos, gap int, fill fillFunc[T], kind gapKind) error {
	block, err := v.allocateBlock(newCap)
	if err != nil {
		return err
	}
	a := v.allocator()

	if fill != nil {
		if err := fill(block[pos : pos+gap]); err != nil {
			a.Deallocate(block)
			return err
		}
	}

	rollback := func() {
		if kind == gapCopied {
			v.unwind(block[pos : pos+gap])
		} else {
			clear(block[pos : pos+gap])
		}
	}

	// Until commit, every live element is still owned by the old block.
	if i, err := v.relocate(block[:pos], v.data[:pos]); err != nil {
		rollback()
		clear(block[:i])
		a.Deallocate(block)
		return &ConstructionError{Op: "grow", Index: i, Err: err}
	}
	if i, err := v.relocate(block[pos+gap:v.size+gap], v.data[pos:v.size]); err != nil {
		rollback()
		clear(block[:pos])
		clear(block[pos+gap : pos+gap+i])
		a.Deallocate(block)
		return &ConstructionError{Op: "grow", Index: pos + i, Err: err}
	}

	old := v.data
	v.data = block
	if old != nil {
		// Relocated slots are moved-from: zero them, never Destroy them.
		clear(old[:v.size])
		a.Deallocate(old)
	}
	v.logRealloc(op, len(old), newCap)
	return nil
}

// relocate moves src into the uninitialized slots of dst, in order. It returns
// how many elements were placed before a failure.
func (v *Vector[T]) relocate(dst, src []T) (int, error) {
	a := v.allocator()
	for i := range src {
		if err := a.Construct(&dst[i], src[i]); err != nil {
			return i, err
		}
	}
	return len(src), nil
}

// placeCopy constructs a deep copy of src into dst.
func (v *Vector[T]) placeCopy(dst *T, src T) error {
	cp, err := alloc.Clone(src)
	if err != nil {
		return err
	}
	if err := v.allocator().Construct(dst, cp); err != nil {
		if isCloner(src) {
			alloc.DestroyValue(&cp)
		}
		return err
	}
	return nil
}

// unwind tears down elements placed by a failed operation. Deep copies made by
// the vector are destroyed; plain values are only zeroed because the caller
// still owns whatever they reference.
func (v *Vector[T]) unwind(slots []T) {
	a := v.allocator()
	for i := range slots {
		if isCloner(slots[i]) {
			a.Destroy(&slots[i])
		} else {
			var zero T
			slots[i] = zero
		}
	}
}

// duplicate builds a block of capacity slots in v's allocator holding deep
// copies of src. On failure nothing is left allocated.
func (v *Vector[T]) duplicate(op string, src []T, capacity int) ([]T, error) {
	if capacity == 0 {
		return nil, nil
	}
	block, err := v.allocateBlock(capacity)
	if err != nil {
		return nil, err
	}
	for i := range src {
		if err := v.placeCopy(&block[i], src[i]); err != nil {
			v.unwind(block[:i])
			v.allocator().Deallocate(block)
			return nil, &ConstructionError{Op: op, Index: i, Err: err}
		}
	}
	return block, nil
}

// Reserve ensures Cap() >= n. It never shrinks; on failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.data) {
		return nil
	}
	return v.realloc("reserve", n, v.size, 0, nil, gapMoved)
}

// ShrinkToFit reduces the capacity to Len(). A vector with no elements gives
// its block back entirely.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.data) {
		return nil
	}
	if v.size == 0 {
		old := len(v.data)
		v.allocator().Deallocate(v.data)
		v.data = nil
		v.logRealloc("shrink", old, 0)
		return nil
	}
	return v.realloc("shrink", v.size, v.size, 0, nil, gapMoved)
}

// Release destroys every element and returns the block to the allocator,
// leaving Len() == Cap() == 0. It is safe to call more than once; the vector
// remains usable and allocates again on the next insertion.
func (v *Vector[T]) Release() {
	if v.data == nil && v.size == 0 {
		return
	}
	a := v.allocator()
	for i := range v.size {
		a.Destroy(&v.data[i])
	}
	if v.data != nil {
		a.Deallocate(v.data)
	}
	v.data = nil
	v.size = 0
}

func (v *Vector[T]) logRealloc(op string, oldCap, newCap int) {
	if v.log == nil {
		return
	}
	v.log.Debug("vector reallocated",
		"op", op,
		"len", v.size,
		"old_cap", oldCap,
		"new_cap", newCap,
	)
}

func isCloner[T any](x T) bool {
	_, ok := any(x).(alloc.Cloner[T])
	return ok
}
