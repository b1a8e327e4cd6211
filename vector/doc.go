// Package vector provides Vector, a generic contiguous sequence with amortized
// O(1) append, checked indexed access, stable insertion and removal at any
// position, and capacity management through a pluggable allocator.
//
// # Storage
//
// A Vector owns exactly one block obtained from its alloc.Allocator. Slots
// [0, Len()) are live; slots [Len(), Cap()) are allocated but unconstructed.
// When an insertion finds the block full, the vector grows to
//
//	max(needed, cap + cap/2 + 1)
//
// slots (1 when the block is empty), so appending N elements performs
// O(log N) reallocations. Capacity only shrinks through ShrinkToFit or Release.
//
// # Failure Semantics
//
// Every index-taking operation is checked before anything is touched and
// reports an *IndexError (matching ErrIndex). Nothing is ever clamped.
//
// Reallocation is all-or-nothing. The new element (if any) and every live
// element are placed into the new block first; only then is the old block
// released. If the allocator refuses the block (ErrAllocation) or a
// construction fails (*ConstructionError, matching ErrConstruction), the new
// block is torn down and the vector keeps its previous length, capacity and
// elements.
//
// The vector never logs or swallows its own errors; every failure is returned.
//
// # Construction
//
//	v, err := vector.New[int]()                          // empty, DefaultCapacity slots
//	v, err := vector.New(vector.WithAllocator[int](a))   // explicit allocator
//	v, err := vector.Filled(8, "x")                      // 8 copies
//	v, err := vector.Sized[float64](16)                  // 16 zero values
//	v, err := vector.Of(1, 2, 3, 4)                      // literal sequence
//
// # Traversal
//
// Cursor is a random-access position supporting dereference, stepping,
// offsets, distance and ordering, in forward or reverse direction and with
// mutable or read-only access. All, Values and Backward expose range-over-func
// iterators.
//
// # Ownership
//
// Clone and CopyAssign make deep copies. Take and MoveAssign transfer storage
// and leave the source empty with no block; releasing a moved-from vector is
// a no-op.
//
// # Thread Safety
//
// Vector instances are not thread-safe. Callers needing concurrent access
// must synchronize externally (one writer or many readers at a time).
package vector
