//go:build !linux && !darwin && !freebsd && !windows

package mmap

// PageSize returns a conventional page size on platforms without mappings.
func PageSize() int {
	return 4096
}

// Anonymous reports ErrUnavailable; callers fall back to heap memory.
func Anonymous(size int) ([]byte, func() error, error) {
	if size == 0 {
		return []byte{}, noop, nil
	}
	return nil, nil, ErrUnavailable
}
