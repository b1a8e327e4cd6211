// Package mmap provides platform-specific helpers for anonymous, private memory
// regions used as raw allocator backing.
//
// Regions returned by Anonymous live outside the Go heap: the garbage collector
// neither scans nor frees them. Callers must only store pointer-free data in
// them and must invoke the returned release function exactly once.
package mmap

import "errors"

// ErrUnavailable indicates the platform cannot provide anonymous mappings.
var ErrUnavailable = errors.New("mmap: anonymous mappings unavailable")

// noop is returned as the release function for empty regions.
func noop() error { return nil }
