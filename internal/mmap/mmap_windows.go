//go:build windows

package mmap

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/vectorkit/internal/buf"
)

const pageSize = 4096

// PageSize returns the allocation granularity used for regions.
func PageSize() int {
	return pageSize
}

// Anonymous reserves and commits size bytes (rounded up to whole pages) of
// zeroed read-write memory with VirtualAlloc.
func Anonymous(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmap: negative size %d", size)
	}
	if size == 0 {
		return []byte{}, noop, nil
	}
	length, ok := buf.AlignUp(size, pageSize)
	if !ok {
		return nil, nil, fmt.Errorf("mmap: size %d overflows page alignment", size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(length), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap: VirtualAlloc %d bytes: %w", length, err)
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}
	return data[:size], release, nil
}
