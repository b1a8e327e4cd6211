package alloc

import "fmt"

// Limit caps the number of slots outstanding through a base allocator.
// It is not safe for concurrent use.
type Limit[T any] struct {
	base   Allocator[T]
	budget int
	used   int
}

// NewLimit wraps base so that at most budget slots are outstanding at once.
func NewLimit[T any](base Allocator[T], budget int) *Limit[T] {
	if budget < 0 {
		budget = 0
	}
	return &Limit[T]{base: base, budget: budget}
}

// Allocate fails with ErrExhausted when n more slots would exceed the budget.
func (l *Limit[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > l.MaxSize() {
		return nil, fmt.Errorf("%w: %d slots (max %d)", ErrTooLarge, n, l.MaxSize())
	}
	if n > l.budget-l.used {
		return nil, fmt.Errorf("%w: %d slots requested, %d of %d in use",
			ErrExhausted, n, l.used, l.budget)
	}
	block, err := l.base.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.used += len(block)
	return block, nil
}

// Deallocate returns the block's slots to the budget.
func (l *Limit[T]) Deallocate(block []T) {
	if block == nil {
		return
	}
	l.used -= len(block)
	if l.used < 0 {
		l.used = 0
	}
	l.base.Deallocate(block)
}

// Construct delegates to the base allocator.
func (l *Limit[T]) Construct(dst *T, v T) error {
	return l.base.Construct(dst, v)
}

// Destroy delegates to the base allocator.
func (l *Limit[T]) Destroy(p *T) {
	l.base.Destroy(p)
}

// MaxSize is the smaller of the budget and the base allocator's limit.
func (l *Limit[T]) MaxSize() int {
	return min(l.budget, l.base.MaxSize())
}

// Used returns the number of slots currently outstanding.
func (l *Limit[T]) Used() int {
	return l.used
}

// Budget returns the configured slot budget.
func (l *Limit[T]) Budget() int {
	return l.budget
}

// Compile-time interface check
var _ Allocator[int] = (*Limit[int])(nil)
