package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is the root of every allocation failure.
	ErrAllocation = errors.New("alloc: allocation failed")

	// ErrTooLarge indicates a request for more slots than MaxSize, or a negative count.
	ErrTooLarge = fmt.Errorf("%w: request exceeds max size", ErrAllocation)

	// ErrExhausted indicates a Limit allocator ran out of budget.
	ErrExhausted = fmt.Errorf("%w: budget exhausted", ErrAllocation)

	// ErrPointerType indicates an element type that cannot live outside the Go heap.
	ErrPointerType = errors.New("alloc: element type contains pointers")

	// ErrInjected indicates a failure injected by a Faulty allocator.
	ErrInjected = errors.New("alloc: injected failure")
)
