package alloc

import "fmt"

// FaultyCounts is a snapshot of the calls observed by a Faulty allocator.
type FaultyCounts struct {
	Allocations   int
	Deallocations int
	Constructs    int
	Destroys      int
}

// Outstanding returns the number of blocks allocated and not yet released.
func (c FaultyCounts) Outstanding() int {
	return c.Allocations - c.Deallocations
}

// Faulty wraps another allocator and fails a chosen call. It records every
// call so tests can verify that rollback paths release what they acquired.
//
// Arm a failure with FailNthAllocate or FailNthConstruct; n counts calls made
// after arming, starting at 1. A failure fires once and then disarms.
type Faulty[T any] struct {
	base Allocator[T]

	allocFailIn     int
	constructFailIn int

	counts FaultyCounts
}

// NewFaulty wraps base. A nil base means the Go heap.
func NewFaulty[T any](base Allocator[T]) *Faulty[T] {
	if base == nil {
		base = NewHeap[T]()
	}
	return &Faulty[T]{base: base}
}

// FailNthAllocate makes the nth subsequent Allocate call fail. n <= 0 disarms.
func (f *Faulty[T]) FailNthAllocate(n int) {
	f.allocFailIn = max(n, 0)
}

// FailNthConstruct makes the nth subsequent Construct call fail. n <= 0 disarms.
func (f *Faulty[T]) FailNthConstruct(n int) {
	f.constructFailIn = max(n, 0)
}

// Disarm cancels any pending failure.
func (f *Faulty[T]) Disarm() {
	f.allocFailIn = 0
	f.constructFailIn = 0
}

// Counts returns the calls observed so far.
func (f *Faulty[T]) Counts() FaultyCounts {
	return f.counts
}

// Reset clears the counters and disarms pending failures.
func (f *Faulty[T]) Reset() {
	f.Disarm()
	f.counts = FaultyCounts{}
}

// Allocate delegates to the base allocator unless a failure is due.
func (f *Faulty[T]) Allocate(n int) ([]T, error) {
	if f.allocFailIn > 0 {
		f.allocFailIn--
		if f.allocFailIn == 0 {
			return nil, fmt.Errorf("%w: allocate %d slots: %w", ErrAllocation, n, ErrInjected)
		}
	}
	block, err := f.base.Allocate(n)
	if err != nil {
		return nil, err
	}
	f.counts.Allocations++
	return block, nil
}

// Deallocate delegates to the base allocator.
func (f *Faulty[T]) Deallocate(block []T) {
	f.counts.Deallocations++
	f.base.Deallocate(block)
}

// Construct delegates to the base allocator unless a failure is due.
// A failed Construct leaves dst untouched.
func (f *Faulty[T]) Construct(dst *T, v T) error {
	if f.constructFailIn > 0 {
		f.constructFailIn--
		if f.constructFailIn == 0 {
			return ErrInjected
		}
	}
	if err := f.base.Construct(dst, v); err != nil {
		return err
	}
	f.counts.Constructs++
	return nil
}

// Destroy delegates to the base allocator.
func (f *Faulty[T]) Destroy(p *T) {
	f.counts.Destroys++
	f.base.Destroy(p)
}

// MaxSize delegates to the base allocator.
func (f *Faulty[T]) MaxSize() int {
	return f.base.MaxSize()
}

// Compile-time interface check
var _ Allocator[int] = (*Faulty[int])(nil)
