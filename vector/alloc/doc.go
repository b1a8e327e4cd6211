// Package alloc provides the allocation capability consumed by vector.Vector.
//
// # Overview
//
// A Vector never touches raw memory directly. Every block it owns is obtained
// from an Allocator, every element it places is constructed through the
// allocator, and every element it removes is destroyed through it. This keeps
// the growth policy independent of where memory actually comes from.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface, which supports:
//
//   - Allocate(n): Obtain a block of n uninitialized slots
//   - Deallocate(block): Return a block obtained from Allocate
//   - Construct(dst, v): Place v into an uninitialized slot (may fail)
//   - Destroy(p): End the lifetime of a live slot
//   - MaxSize(): Largest n Allocate can ever satisfy
//
// # Implementations
//
// Heap: Go heap allocator
//
//   - Stateless, all instances compare equal
//   - Construct never fails
//
// Pool: Size-class pooled allocator
//
//   - Requests rounded up to size classes (linear small, 1.5x medium)
//   - Blocks recycled through per-class sync.Pool instances
//   - Atomic statistics, safe to share between containers
//
// Limit: Budget wrapper
//
//   - Fails with ErrExhausted once outstanding slots exceed the budget
//
// Mmap: Anonymous-mapping allocator
//
//   - Blocks live outside the Go heap (golang.org/x/sys)
//   - Only accepts pointer-free element types
//
// Faulty: Fault-injection wrapper
//
//   - Fails the Nth Allocate or Construct call
//   - Counts every call, used to exercise rollback paths
//
// # Element Hooks
//
// Element types may opt into two hooks that every allocator honours:
//
//	// Cloner produces deep copies; Clone errors surface as construction failures.
//	func (r Record) Clone() (Record, error)
//
//	// Disposer runs when a live element is destroyed.
//	func (r *Record) Dispose()
//
// # Usage Example
//
//	pool := alloc.NewPool[int](alloc.DefaultConfig)
//	v, err := vector.New(vector.WithAllocator[int](pool))
//	if err != nil {
//	    return err
//	}
//	defer v.Release()
//
// # Thread Safety
//
// Heap and Pool may be shared freely. Limit, Mmap and Faulty keep unsynchronized
// bookkeeping; callers must synchronize access externally.
package alloc
