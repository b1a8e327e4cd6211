package alloc

import "math"

// SizeClassConfig defines the size class strategy of a Pool, measured in slots.
// Different configurations trade reuse rate against internal fragmentation.
type SizeClassConfig struct {
	// Name for this configuration (for benchmarking)
	Name string

	// Small allocation settings (linear increments)
	SmallMin       int // Minimum class size (typically 1)
	SmallMax       int // Max for linear increments
	SmallIncrement int // Increment between small classes

	// Medium allocation settings (geometric growth)
	MediumMax    int     // Requests above this bypass the pool
	GrowthFactor float64 // Geometric factor between medium classes
}

// Predefined configurations.
var (
	// ConfigFineGrained keeps waste low for element-heavy workloads.
	// 1-64 step 4 (16 classes) + 64-64K at 1.25x.
	ConfigFineGrained = SizeClassConfig{
		Name:           "FineGrained",
		SmallMin:       1,
		SmallMax:       64,
		SmallIncrement: 4,
		MediumMax:      1 << 16,
		GrowthFactor:   1.25,
	}

	// ConfigBalanced matches the vector growth factor so successive
	// reallocations land in neighbouring classes.
	// 1-64 step 8 (8 classes) + 64-64K at 1.5x.
	ConfigBalanced = SizeClassConfig{
		Name:           "Balanced",
		SmallMin:       1,
		SmallMax:       64,
		SmallIncrement: 8,
		MediumMax:      1 << 16,
		GrowthFactor:   1.5,
	}

	// ConfigCoarse favours reuse over fragmentation.
	// 1-64 step 16 (4 classes) + 64-64K at 2x.
	ConfigCoarse = SizeClassConfig{
		Name:           "Coarse",
		SmallMin:       1,
		SmallMax:       64,
		SmallIncrement: 16,
		MediumMax:      1 << 16,
		GrowthFactor:   2.0,
	}

	// DefaultConfig is used when none is specified.
	DefaultConfig = ConfigBalanced
)

// sizeClassTable holds the computed size class boundaries.
type sizeClassTable struct {
	config     SizeClassConfig
	boundaries []int // Upper bound (inclusive) of each class, in slots
	numClasses int
}

// newSizeClassTable computes size class boundaries from config.
func newSizeClassTable(config SizeClassConfig) *sizeClassTable {
	if config.SmallMin < 1 {
		config.SmallMin = 1
	}
	if config.SmallIncrement < 1 {
		config.SmallIncrement = 1
	}
	if config.GrowthFactor <= 1 {
		config.GrowthFactor = 2
	}
	table := &sizeClassTable{
		config:     config,
		boundaries: make([]int, 0, 64),
	}

	// Phase 1: Small classes (linear increments)
	for size := config.SmallMin; size < config.SmallMax; size += config.SmallIncrement {
		table.boundaries = append(table.boundaries, size+config.SmallIncrement-1)
	}

	// Phase 2: Medium classes (geometric growth)
	size := config.SmallMax
	if n := len(table.boundaries); n > 0 {
		size = table.boundaries[n-1] + 1
	}
	for size <= config.MediumMax {
		nextSize := int(math.Ceil(float64(size) * config.GrowthFactor))
		if nextSize <= size {
			nextSize = size + 1 // Ensure progress
		}
		table.boundaries = append(table.boundaries, nextSize-1)
		size = nextSize
	}

	table.numClasses = len(table.boundaries)
	return table
}

// classFor returns the class index for a request of n slots.
// Returns t.numClasses for requests larger than every boundary (unpooled).
func (t *sizeClassTable) classFor(n int) int {
	lo, hi := 0, t.numClasses-1

	for lo <= hi {
		mid := (lo + hi) / 2
		if n <= t.boundaries[mid] {
			// Check if this is the smallest boundary that fits
			if mid == 0 || n > t.boundaries[mid-1] {
				return mid
			}
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	return t.numClasses
}

// classOfCap returns the class whose boundary is exactly c, or -1.
func (t *sizeClassTable) classOfCap(c int) int {
	cls := t.classFor(c)
	if cls < t.numClasses && t.boundaries[cls] == c {
		return cls
	}
	return -1
}

// String returns the configuration name.
func (t *sizeClassTable) String() string {
	return t.config.Name
}
