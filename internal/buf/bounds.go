// Package buf contains overflow-safe size arithmetic shared by the allocators
// and the vector growth policy.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * elementSize calculations when sizing blocks.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// BlockBytes returns count*elemSize, or an error describing the overflow or the
// negative input. Zero-sized elements always need zero bytes.
//
//	n, err := buf.BlockBytes(slots, int(unsafe.Sizeof(zero)))
//	if err != nil {
//	    return nil, fmt.Errorf("mmap: %w", err)
//	}
func BlockBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// MaxSlots returns the largest slot count whose byte size fits in an int.
func MaxSlots(elemSize int) int {
	if elemSize <= 0 {
		return math.MaxInt
	}
	return math.MaxInt / elemSize
}

// AlignUp rounds n up to the next multiple of align (a power of two).
// It reports ok = false when rounding would overflow.
func AlignUp(n, align int) (int, bool) {
	if align <= 1 {
		return n, true
	}
	sum, ok := AddOverflowSafe(n, align-1)
	if !ok {
		return 0, false
	}
	return sum &^ (align - 1), true
}

// CheckRange validates a half-open range [first, last) against length.
func CheckRange(length, first, last int) error {
	if first < 0 {
		return fmt.Errorf("negative start: %d", first)
	}
	if last < first {
		return fmt.Errorf("inverted range: [%d, %d)", first, last)
	}
	if last > length {
		return fmt.Errorf("bounds: end=%d > len=%d", last, length)
	}
	return nil
}
