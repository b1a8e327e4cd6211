package vector

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/vectorkit/vector/alloc"
)

// Vector is a contiguous, growable sequence of T.
//
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are allocated but
// unconstructed. The zero value is an empty vector with no storage that
// allocates from the Go heap on first insertion.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data  []T // len(data) is the capacity
	size  int
	alloc alloc.Allocator[T]
	log   *slog.Logger
}

// New returns an empty vector with Options.InitialCapacity slots.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	o := buildOptions(opts)
	return newVector(o, o.InitialCapacity)
}

// Filled returns a vector holding n copies of value. Copies are made through
// the Cloner hook when T implements it. If any copy fails, every copy made so
// far is destroyed and the block released before the error is returned.
func Filled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", alloc.ErrTooLarge, n)
	}
	o := buildOptions(opts)
	v, err := newVector(o, max(n, o.InitialCapacity))
	if err != nil {
		return nil, err
	}
	for i := range n {
		if err := v.placeCopy(&v.data[i], value); err != nil {
			v.Release()
			return nil, &ConstructionError{Op: "fill", Index: i, Err: err}
		}
		v.size++
	}
	return v, nil
}

// Sized returns a vector holding n zero-valued elements.
func Sized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", alloc.ErrTooLarge, n)
	}
	o := buildOptions(opts)
	v, err := newVector(o, max(n, o.InitialCapacity))
	if err != nil {
		return nil, err
	}
	a := v.allocator()
	var zero T
	for i := range n {
		if err := a.Construct(&v.data[i], zero); err != nil {
			v.Release()
			return nil, &ConstructionError{Op: "sized", Index: i, Err: err}
		}
		v.size++
	}
	return v, nil
}

// Of returns a heap-backed vector holding values in order.
func Of[T any](values ...T) (*Vector[T], error) {
	return From(values)
}

// From returns a vector holding the elements of values in order.
func From[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	o := buildOptions(opts)
	v, err := newVector(o, max(len(values), o.InitialCapacity))
	if err != nil {
		return nil, err
	}
	if i, err := v.relocate(v.data, values); err != nil {
		clear(v.data[:i])
		v.Release()
		return nil, &ConstructionError{Op: "from", Index: i, Err: err}
	}
	v.size = len(values)
	return v, nil
}

func newVector[T any](o *Options[T], capacity int) (*Vector[T], error) {
	v := &Vector[T]{alloc: o.Allocator, log: o.Logger}
	if capacity == 0 {
		return v, nil
	}
	block, err := v.allocateBlock(capacity)
	if err != nil {
		return nil, err
	}
	v.data = block
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether Len() == 0.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Allocator returns the allocator backing the vector.
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.allocator() }

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, indexError("at", i, v.size)
	}
	return v.data[i], nil
}

// Set replaces the element at index i. The old element is destroyed only
// after the new one has been constructed.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.size {
		return indexError("set", i, v.size)
	}
	a := v.allocator()
	var tmp T
	if err := a.Construct(&tmp, x); err != nil {
		return &ConstructionError{Op: "set", Index: i, Err: err}
	}
	a.Destroy(&v.data[i])
	v.data[i] = tmp
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, emptyError("front")
	}
	return v.data[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, emptyError("back")
	}
	return v.data[v.size-1], nil
}

// Slice returns the live elements as a slice sharing the vector's storage.
// Its capacity is clipped to Len(), so appending to it never writes into the
// vector. Any operation that reallocates or shifts elements invalidates it.
func (v *Vector[T]) Slice() []T {
	return v.data[:v.size:v.size]
}

// String formats the live elements like a slice, e.g. "[1 2 3]".
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}
