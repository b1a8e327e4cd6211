package alloc

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/vectorkit/internal/buf"
	"github.com/joshuapare/vectorkit/internal/mmap"
)

// Mmap carves blocks out of anonymous private mappings. Memory obtained this
// way is invisible to the garbage collector, so only pointer-free element
// types are accepted. On platforms without mappings it falls back to the heap.
//
// Mmap is not safe for concurrent use.
type Mmap[T any] struct {
	elemSize int
	releases map[*T]func() error
	mapped   int
	err      error
}

// NewMmap returns an Mmap allocator, or ErrPointerType when T holds pointers.
func NewMmap[T any]() (*Mmap[T], error) {
	var zero T
	typ := reflect.TypeOf(&zero).Elem()
	if hasPointers(typ) {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, typ)
	}
	return &Mmap[T]{
		elemSize: int(unsafe.Sizeof(zero)),
		releases: make(map[*T]func() error),
	}, nil
}

// Allocate maps a zeroed region large enough for n slots.
func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > m.MaxSize() {
		return nil, fmt.Errorf("%w: %d slots (max %d)", ErrTooLarge, n, m.MaxSize())
	}
	if n == 0 || m.elemSize == 0 {
		return make([]T, n), nil
	}
	size, err := buf.BlockBytes(n, m.elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}
	data, release, err := mmap.Anonymous(size)
	if errors.Is(err, mmap.ErrUnavailable) {
		return make([]T, n), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	block := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n)
	m.releases[&block[0]] = release
	m.mapped += size
	return block, nil
}

// Deallocate unmaps the region behind block. Blocks that were not mapped
// (empty, zero-sized or heap fallback) are ignored. An unmap failure is
// kept and reported by Err.
func (m *Mmap[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	key := &block[0]
	release, ok := m.releases[key]
	if !ok {
		return
	}
	delete(m.releases, key)
	m.mapped -= len(block) * m.elemSize
	if err := release(); err != nil && m.err == nil {
		m.err = err
	}
}

// Construct places v into dst. It never fails.
func (m *Mmap[T]) Construct(dst *T, v T) error {
	ConstructValue(dst, v)
	return nil
}

// Destroy runs the element's Disposer hook and zeroes the slot.
func (m *Mmap[T]) Destroy(p *T) {
	DestroyValue(p)
}

// MaxSize returns the largest slot count whose byte size fits in an int.
func (m *Mmap[T]) MaxSize() int {
	return buf.MaxSlots(m.elemSize)
}

// Mapped returns the number of bytes currently mapped for live blocks.
func (m *Mmap[T]) Mapped() int {
	return m.mapped
}

// Blocks returns the number of mapped blocks not yet released.
func (m *Mmap[T]) Blocks() int {
	return len(m.releases)
}

// Err returns the first unmap failure, if any.
func (m *Mmap[T]) Err() error {
	return m.err
}

// Close unmaps every outstanding block. Slices still referencing them must
// not be used afterwards.
func (m *Mmap[T]) Close() error {
	for key, release := range m.releases {
		if err := release(); err != nil && m.err == nil {
			m.err = err
		}
		delete(m.releases, key)
	}
	m.mapped = 0
	return m.err
}

// hasPointers reports whether values of typ contain anything the garbage
// collector must trace.
func hasPointers(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typ.Len() > 0 && hasPointers(typ.Elem())
	case reflect.Struct:
		for i := range typ.NumField() {
			if hasPointers(typ.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Compile-time interface check
var _ Allocator[int] = (*Mmap[int])(nil)
