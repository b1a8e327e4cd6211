package vector

import (
	"log/slog"

	"github.com/joshuapare/vectorkit/vector/alloc"
)

// DefaultCapacity is the slot count of a vector created without an explicit
// capacity. It is positive so a fresh vector always owns storage.
const DefaultCapacity = 5

// NotFound is returned by Index and IndexFunc when no element matches.
const NotFound = -1

// Options configures a new vector.
type Options[T any] struct {
	// InitialCapacity is the number of slots allocated up front.
	// Default: DefaultCapacity
	InitialCapacity int

	// Allocator provides every block and constructs every element.
	// Default: alloc.Heap[T]
	Allocator alloc.Allocator[T]

	// Logger receives Debug records for reallocations. Errors are never
	// logged, only returned.
	// Default: nil (silent)
	Logger *slog.Logger
}

// DefaultOptions returns the options used by New when none are given.
func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		InitialCapacity: DefaultCapacity,
		Allocator:       alloc.NewHeap[T](),
	}
}

// Option mutates Options.
type Option[T any] func(*Options[T])

// WithCapacity sets the initial capacity.
func WithCapacity[T any](n int) Option[T] {
	return func(o *Options[T]) { o.InitialCapacity = n }
}

// WithAllocator sets the allocator. A nil allocator keeps the default.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(o *Options[T]) {
		if a != nil {
			o.Allocator = a
		}
	}
}

// WithLogger sets the reallocation logger.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *Options[T]) { o.Logger = l }
}

func buildOptions[T any](opts []Option[T]) *Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
