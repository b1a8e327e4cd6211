package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/vectorkit/internal/buf"
)

// Heap allocates blocks on the Go heap. The zero value is ready to use and all
// Heap values compare equal.
type Heap[T any] struct{}

// NewHeap returns a Heap allocator for T.
func NewHeap[T any]() Heap[T] {
	return Heap[T]{}
}

// Allocate returns make([]T, n). A runtime refusal to size the slice is
// reported as ErrTooLarge rather than a panic.
func (h Heap[T]) Allocate(n int) (block []T, err error) {
	if n < 0 || n > h.MaxSize() {
		return nil, fmt.Errorf("%w: %d slots (max %d)", ErrTooLarge, n, h.MaxSize())
	}
	defer func() {
		if r := recover(); r != nil {
			block = nil
			err = fmt.Errorf("%w: %d slots: %v", ErrTooLarge, n, r)
		}
	}()
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector reclaims the block.
func (Heap[T]) Deallocate([]T) {}

// Construct places v into dst. It never fails.
func (Heap[T]) Construct(dst *T, v T) error {
	ConstructValue(dst, v)
	return nil
}

// Destroy runs the element's Disposer hook and zeroes the slot.
func (Heap[T]) Destroy(p *T) {
	DestroyValue(p)
}

// MaxSize returns the largest slot count whose byte size fits in an int.
func (Heap[T]) MaxSize() int {
	var zero T
	return buf.MaxSlots(int(unsafe.Sizeof(zero)))
}

// Compile-time interface check
var _ Allocator[int] = Heap[int]{}
