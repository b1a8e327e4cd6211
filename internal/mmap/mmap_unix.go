//go:build linux || darwin || freebsd

package mmap

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/vectorkit/internal/buf"
)

// PageSize returns the system page size.
func PageSize() int {
	return unix.Getpagesize()
}

// Anonymous maps size bytes (rounded up to whole pages) of zeroed, private,
// read-write memory and returns the region with a release function.
func Anonymous(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmap: negative size %d", size)
	}
	if size == 0 {
		return []byte{}, noop, nil
	}
	length, ok := buf.AlignUp(size, PageSize())
	if !ok {
		return nil, nil, fmt.Errorf("mmap: size %d overflows page alignment", size)
	}
	data, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap: map %d bytes: %w", length, err)
	}
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data[:size], release, nil
}
