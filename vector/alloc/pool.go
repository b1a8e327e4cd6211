package alloc

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// PoolStats is a snapshot of Pool activity.
type PoolStats struct {
	Allocs    int64 // Allocate calls that succeeded
	Frees     int64 // Deallocate calls
	Reuses    int64 // Allocations served from a pooled block
	LiveSlots int64 // Slots handed out and not yet returned
}

// Pool rounds requests up to size classes and recycles released blocks
// through one sync.Pool per class. Requests above the largest class are
// served from the heap and dropped on release.
//
// A Pool is safe for concurrent use and may back many vectors at once.
type Pool[T any] struct {
	table *sizeClassTable
	pools []sync.Pool
	heap  Heap[T]

	allocs    atomic.Int64
	frees     atomic.Int64
	reuses    atomic.Int64
	liveSlots atomic.Int64
}

// NewPool creates a Pool using the given size class configuration.
func NewPool[T any](config SizeClassConfig) *Pool[T] {
	table := newSizeClassTable(config)
	return &Pool[T]{
		table: table,
		pools: make([]sync.Pool, table.numClasses),
	}
}

// Allocate returns a block of n slots. The block's capacity is the class
// boundary so Deallocate can route it back to its class.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > p.MaxSize() {
		return nil, fmt.Errorf("%w: %d slots (max %d)", ErrTooLarge, n, p.MaxSize())
	}
	cls := p.table.classFor(n)
	var block []T
	if cls < p.table.numClasses {
		if v := p.pools[cls].Get(); v != nil {
			block = (*v.(*[]T))[:n]
			p.reuses.Add(1)
		} else {
			full, err := p.heap.Allocate(p.table.boundaries[cls])
			if err != nil {
				return nil, err
			}
			block = full[:n]
		}
	} else {
		full, err := p.heap.Allocate(n)
		if err != nil {
			return nil, err
		}
		block = full
	}
	p.allocs.Add(1)
	p.liveSlots.Add(int64(n))
	return block, nil
}

// Deallocate zeroes the block and returns it to its class pool.
func (p *Pool[T]) Deallocate(block []T) {
	if block == nil {
		return
	}
	p.frees.Add(1)
	p.liveSlots.Add(-int64(len(block)))

	full := block[:cap(block)]
	cls := p.table.classOfCap(cap(block))
	if cls < 0 {
		return
	}
	clear(full)
	p.pools[cls].Put(&full)
}

// Construct places v into dst. It never fails.
func (p *Pool[T]) Construct(dst *T, v T) error {
	ConstructValue(dst, v)
	return nil
}

// Destroy runs the element's Disposer hook and zeroes the slot.
func (p *Pool[T]) Destroy(ptr *T) {
	DestroyValue(ptr)
}

// MaxSize returns the heap limit for T.
func (p *Pool[T]) MaxSize() int {
	return p.heap.MaxSize()
}

// Stats returns a snapshot of pool activity.
func (p *Pool[T]) Stats() PoolStats {
	return PoolStats{
		Allocs:    p.allocs.Load(),
		Frees:     p.frees.Load(),
		Reuses:    p.reuses.Load(),
		LiveSlots: p.liveSlots.Load(),
	}
}

// Config returns the size class configuration name.
func (p *Pool[T]) Config() string {
	return p.table.String()
}

// Compile-time interface check
var _ Allocator[int] = (*Pool[int])(nil)
