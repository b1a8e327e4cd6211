package vector

import (
	"testing"

	"github.com/joshuapare/vectorkit/vector/alloc"
)

const benchElems = 10_000

// BenchmarkAppend_Heap measures growth from the default capacity.
func BenchmarkAppend_Heap(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		v, err := New[int]()
		if err != nil {
			b.Fatal(err)
		}
		for i := range benchElems {
			if err := v.Append(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkAppend_Pool reuses released blocks across iterations.
func BenchmarkAppend_Pool(b *testing.B) {
	p := alloc.NewPool[int](alloc.DefaultConfig)
	b.ReportAllocs()
	for range b.N {
		v, err := New(WithAllocator[int](p))
		if err != nil {
			b.Fatal(err)
		}
		for i := range benchElems {
			if err := v.Append(i); err != nil {
				b.Fatal(err)
			}
		}
		v.Release()
	}
}

// BenchmarkAppend_BuiltinSlice is the baseline for the append benchmarks.
func BenchmarkAppend_BuiltinSlice(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		s := make([]int, 0, DefaultCapacity)
		for i := range benchElems {
			s = append(s, i)
		}
		_ = s
	}
}

// BenchmarkAt measures checked indexed reads.
func BenchmarkAt(b *testing.B) {
	v, err := Sized[int](benchElems)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	sum := 0
	for i := range b.N {
		x, err := v.At(i % benchElems)
		if err != nil {
			b.Fatal(err)
		}
		sum += x
	}
	_ = sum
}

// BenchmarkInsertFront measures the shifting cost of Insert(0, x).
func BenchmarkInsertFront(b *testing.B) {
	for range b.N {
		v, err := New[int]()
		if err != nil {
			b.Fatal(err)
		}
		for i := range 1000 {
			if err := v.Insert(0, i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkCursorWalk measures a full forward traversal through cursors.
func BenchmarkCursorWalk(b *testing.B) {
	v, err := Sized[int](benchElems)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		for c := v.CBegin(); c.Less(v.CEnd()); c.Incr() {
			if _, err := c.Get(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
