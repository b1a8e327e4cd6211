package vector

import (
	"errors"
	"fmt"

	"github.com/joshuapare/vectorkit/vector/alloc"
)

var (
	// ErrIndex indicates an out-of-range index, range or cursor position.
	ErrIndex = errors.New("vector: index out of range")

	// ErrEmpty indicates front/back/pop access on a zero-length vector.
	ErrEmpty = errors.New("vector: empty container")

	// ErrAllocation indicates the allocator could not provide a block.
	// It is the same value as alloc.ErrAllocation.
	ErrAllocation = alloc.ErrAllocation

	// ErrConstruction indicates an element could not be constructed.
	ErrConstruction = errors.New("vector: element construction failed")

	// ErrReadOnly indicates a write through a read-only cursor.
	ErrReadOnly = errors.New("vector: read-only cursor")
)

// IndexError describes a rejected index or range. It matches ErrIndex.
type IndexError struct {
	Op    string
	Index int
	Last  int // exclusive end, only meaningful when Range is set
	Range bool
	Len   int
}

func (e *IndexError) Error() string {
	if e.Range {
		return fmt.Sprintf("vector: %s: range [%d, %d) out of range for length %d",
			e.Op, e.Index, e.Last, e.Len)
	}
	return fmt.Sprintf("vector: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

// ConstructionError reports the slot whose construction failed. It matches
// ErrConstruction and the underlying cause.
type ConstructionError struct {
	Op    string
	Index int
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("vector: %s: construct element %d: %v", e.Op, e.Index, e.Err)
}

func (e *ConstructionError) Unwrap() []error { return []error{ErrConstruction, e.Err} }

func indexError(op string, i, length int) error {
	return &IndexError{Op: op, Index: i, Len: length}
}

func rangeError(op string, first, last, length int) error {
	return &IndexError{Op: op, Index: first, Last: last, Range: true, Len: length}
}

func emptyError(op string) error {
	return fmt.Errorf("%w: %s", ErrEmpty, op)
}
