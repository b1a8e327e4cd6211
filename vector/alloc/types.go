package alloc

import "reflect"

// Allocator defines the allocation capability a Vector consumes.
//
// Implementations:
//   - Heap: Go heap, never fails construction
//   - Pool: Size-class pooled blocks
//   - Limit: Budget-capped wrapper around another allocator
//   - Mmap: Anonymous mappings for pointer-free element types
//   - Faulty: Fault-injection wrapper for tests
type Allocator[T any] interface {
	// Allocate returns a block of exactly n uninitialized (zero) slots.
	// Returns an error wrapping ErrAllocation when n is negative, exceeds
	// MaxSize, or the underlying memory cannot be obtained.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously returned by Allocate.
	// All slots must already be destroyed or relocated.
	Deallocate(block []T)

	// Construct places v into the uninitialized slot dst.
	// On error dst is left untouched.
	Construct(dst *T, v T) error

	// Destroy ends the lifetime of the live element at p.
	// The slot is zeroed afterwards.
	Destroy(p *T)

	// MaxSize returns the largest slot count Allocate can ever satisfy.
	MaxSize() int
}

// Cloner is implemented by element types whose copies must be deep.
// A Clone error is the construction failure of the copy.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Disposer is implemented (on the pointer receiver) by element types that hold
// resources released when the element is destroyed.
type Disposer interface {
	Dispose()
}

// Equaler lets an allocator decide whether another allocator can take over
// blocks it handed out.
type Equaler interface {
	EqualAllocator(other any) bool
}

// Clone returns a copy of v, using its Cloner hook when present.
func Clone[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// ConstructValue places v into dst. Shared by every allocator.
func ConstructValue[T any](dst *T, v T) {
	*dst = v
}

// DestroyValue runs the Disposer hook of *p, if any, and zeroes the slot so the
// garbage collector can reclaim whatever it referenced.
func DestroyValue[T any](p *T) {
	if d, ok := any(p).(Disposer); ok {
		d.Dispose()
	}
	var zero T
	*p = zero
}

// Equal reports whether blocks obtained from a may be released through b and
// vice versa. Allocators implementing Equaler decide for themselves; otherwise
// instances are equal when they have the same comparable dynamic type and
// compare ==.
func Equal[T any](a, b Allocator[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if e, ok := a.(Equaler); ok {
		return e.EqualAllocator(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
