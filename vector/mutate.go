package vector

import (
	"fmt"

	"github.com/joshuapare/vectorkit/internal/buf"
	"github.com/joshuapare/vectorkit/vector/alloc"
)

// Append places x at index Len(), growing the storage when it is full.
// If growth or construction fails the vector is unchanged.
func (v *Vector[T]) Append(x T) error {
	if v.size == len(v.data) {
		newCap, err := v.nextCapacity(v.size + 1)
		if err != nil {
			return err
		}
		if err := v.realloc("append", newCap, v.size, 1, v.placeOne("append", v.size, x), gapMoved); err != nil {
			return err
		}
		v.size++
		return nil
	}
	if err := v.allocator().Construct(&v.data[v.size], x); err != nil {
		return &ConstructionError{Op: "append", Index: v.size, Err: err}
	}
	v.size++
	return nil
}

// AppendAll appends xs in order. Either all of them are appended or, on
// failure, none are and the capacity is unchanged.
func (v *Vector[T]) AppendAll(xs ...T) error {
	if len(xs) == 0 {
		return nil
	}
	need, ok := buf.AddOverflowSafe(v.size, len(xs))
	if !ok {
		return fmt.Errorf("%w: length overflows int", alloc.ErrTooLarge)
	}
	if need > len(v.data) {
		newCap, err := v.nextCapacity(need)
		if err != nil {
			return err
		}
		fill := func(gap []T) error {
			if i, err := v.relocate(gap, xs); err != nil {
				clear(gap[:i])
				return &ConstructionError{Op: "append", Index: v.size + i, Err: err}
			}
			return nil
		}
		if err := v.realloc("append", newCap, v.size, len(xs), fill, gapMoved); err != nil {
			return err
		}
		v.size = need
		return nil
	}
	if i, err := v.relocate(v.data[v.size:need], xs); err != nil {
		clear(v.data[v.size : v.size+i])
		return &ConstructionError{Op: "append", Index: v.size + i, Err: err}
	}
	v.size = need
	return nil
}

// Insert places x at index i, shifting [i, Len()) one slot right. Any i in
// [0, Len()] is valid; i == Len() appends.
func (v *Vector[T]) Insert(i int, x T) error {
	if i < 0 || i > v.size {
		return indexError("insert", i, v.size)
	}
	if v.size == len(v.data) {
		newCap, err := v.nextCapacity(v.size + 1)
		if err != nil {
			return err
		}
		if err := v.realloc("insert", newCap, i, 1, v.placeOne("insert", i, x), gapMoved); err != nil {
			return err
		}
		v.size++
		return nil
	}
	var tmp T
	if err := v.allocator().Construct(&tmp, x); err != nil {
		return &ConstructionError{Op: "insert", Index: i, Err: err}
	}
	copy(v.data[i+1:v.size+1], v.data[i:v.size])
	v.data[i] = tmp
	v.size++
	return nil
}

// Erase destroys the element at index i and shifts [i+1, Len()) one slot left.
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.size {
		return indexError("erase", i, v.size)
	}
	v.allocator().Destroy(&v.data[i])
	copy(v.data[i:], v.data[i+1:v.size])
	var zero T
	v.data[v.size-1] = zero
	v.size--
	return nil
}

// EraseRange destroys the elements in [first, last) and shifts the rest left.
// An empty range is a no-op.
func (v *Vector[T]) EraseRange(first, last int) error {
	if err := buf.CheckRange(v.size, first, last); err != nil {
		return rangeError("erase range", first, last, v.size)
	}
	n := last - first
	if n == 0 {
		return nil
	}
	a := v.allocator()
	for i := first; i < last; i++ {
		a.Destroy(&v.data[i])
	}
	copy(v.data[first:], v.data[last:v.size])
	clear(v.data[v.size-n : v.size])
	v.size -= n
	return nil
}

// PopBack destroys the last element.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return emptyError("pop back")
	}
	v.size--
	v.allocator().Destroy(&v.data[v.size])
	return nil
}

// Clear destroys every element. The capacity is unchanged.
func (v *Vector[T]) Clear() {
	a := v.allocator()
	for i := range v.size {
		a.Destroy(&v.data[i])
	}
	v.size = 0
}

// Resize sets the length to n. Extra elements are destroyed; missing ones are
// copies of fill. On failure the vector is unchanged.
func (v *Vector[T]) Resize(n int, fill T) error {
	if n < 0 {
		return indexError("resize", n, v.size)
	}
	if n <= v.size {
		a := v.allocator()
		for i := n; i < v.size; i++ {
			a.Destroy(&v.data[i])
		}
		v.size = n
		return nil
	}
	copies := func(gap []T) error {
		for i := range gap {
			if err := v.placeCopy(&gap[i], fill); err != nil {
				v.unwind(gap[:i])
				return &ConstructionError{Op: "resize", Index: v.size + i, Err: err}
			}
		}
		return nil
	}
	if n > len(v.data) {
		newCap, err := v.nextCapacity(n)
		if err != nil {
			return err
		}
		if err := v.realloc("resize", newCap, v.size, n-v.size, copies, gapCopied); err != nil {
			return err
		}
	} else if err := copies(v.data[v.size:n]); err != nil {
		return err
	}
	v.size = n
	return nil
}

// Swap exchanges the contents, allocators and loggers of v and o.
func (v *Vector[T]) Swap(o *Vector[T]) {
	*v, *o = *o, *v
}

// placeOne returns a fill that constructs x into a single-slot gap.
func (v *Vector[T]) placeOne(op string, index int, x T) fillFunc[T] {
	return func(gap []T) error {
		if err := v.allocator().Construct(&gap[0], x); err != nil {
			return &ConstructionError{Op: op, Index: index, Err: err}
		}
		return nil
	}
}
