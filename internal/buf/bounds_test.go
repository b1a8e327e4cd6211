package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(1<<20, 8); !ok || p != 8<<20 {
		t.Fatalf("MulOverflowSafe(1<<20,8)=%d,%v", p, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow")
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("zero factor should never overflow")
	}
}

func TestBlockBytes(t *testing.T) {
	if n, err := BlockBytes(10, 8); err != nil || n != 80 {
		t.Fatalf("BlockBytes(10,8)=%d,%v want 80,nil", n, err)
	}
	if _, err := BlockBytes(-1, 8); err == nil {
		t.Fatalf("BlockBytes should reject negative count")
	}
	if _, err := BlockBytes(math.MaxInt, 16); err == nil {
		t.Fatalf("BlockBytes should report overflow")
	}
	if n, err := BlockBytes(math.MaxInt, 0); err != nil || n != 0 {
		t.Fatalf("zero-sized elements need zero bytes, got %d,%v", n, err)
	}
}

func TestMaxSlots(t *testing.T) {
	if got := MaxSlots(0); got != math.MaxInt {
		t.Fatalf("MaxSlots(0)=%d want MaxInt", got)
	}
	if got := MaxSlots(8); got != math.MaxInt/8 {
		t.Fatalf("MaxSlots(8)=%d want %d", got, math.MaxInt/8)
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ n, align, want int }{
		{0, 4096, 0},
		{1, 4096, 4096},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
		{7, 1, 7},
	}
	for _, c := range cases {
		got, ok := AlignUp(c.n, c.align)
		if !ok || got != c.want {
			t.Fatalf("AlignUp(%d,%d)=%d,%v want %d", c.n, c.align, got, ok, c.want)
		}
	}
	if _, ok := AlignUp(math.MaxInt, 4096); ok {
		t.Fatalf("AlignUp should report overflow near MaxInt")
	}
}

func TestCheckRange(t *testing.T) {
	if err := CheckRange(5, 1, 1); err != nil {
		t.Fatalf("empty range should be valid: %v", err)
	}
	if err := CheckRange(5, 0, 5); err != nil {
		t.Fatalf("full range should be valid: %v", err)
	}
	if err := CheckRange(5, -1, 2); err == nil {
		t.Fatalf("negative start should fail")
	}
	if err := CheckRange(5, 3, 2); err == nil {
		t.Fatalf("inverted range should fail")
	}
	if err := CheckRange(5, 2, 6); err == nil {
		t.Fatalf("range past length should fail")
	}
}
