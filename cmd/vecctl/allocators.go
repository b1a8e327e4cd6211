package main

import (
	"fmt"

	"github.com/joshuapare/vectorkit/vector/alloc"
)

type allocKind string

const (
	allocHeap allocKind = "heap"
	allocPool allocKind = "pool"
	allocMmap allocKind = "mmap"
)

func allocatorKind(name string) (allocKind, error) {
	switch k := allocKind(name); k {
	case allocHeap, allocPool, allocMmap:
		return k, nil
	default:
		return "", fmt.Errorf("unknown allocator %q (want heap, pool or mmap)", name)
	}
}

// newIntAllocator builds the allocator named by --alloc. The returned close
// function releases whatever the allocator still holds.
func newIntAllocator(name string) (alloc.Allocator[int], func() error, error) {
	kind, err := allocatorKind(name)
	if err != nil {
		return nil, nil, err
	}
	noop := func() error { return nil }
	switch kind {
	case allocPool:
		p := alloc.NewPool[int](alloc.DefaultConfig)
		return p, func() error {
			st := p.Stats()
			printVerbose("pool %s: %d allocs, %d reuses, %d live slots\n",
				p.Config(), st.Allocs, st.Reuses, st.LiveSlots)
			return nil
		}, nil
	case allocMmap:
		m, err := alloc.NewMmap[int]()
		if err != nil {
			return nil, nil, err
		}
		return m, func() error {
			printVerbose("mmap: %d blocks, %s mapped\n", m.Blocks(), formatBytes(int64(m.Mapped())))
			return m.Close()
		}, nil
	default:
		return alloc.NewHeap[int](), noop, nil
	}
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
