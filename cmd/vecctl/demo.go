package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vectorkit/internal/logger"
	"github.com/joshuapare/vectorkit/vector"
	"github.com/joshuapare/vectorkit/vector/alloc"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run functionality checks",
		Long: `The demo command mirrors every vector operation against a built-in
slice and reports PASSED or FAILED for each check, including the rollback of
a failed growth.

Example:
  vecctl demo
  vecctl demo --alloc pool
  vecctl demo --alloc mmap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

// CheckResult is the outcome of one functionality check.
type CheckResult struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Expected string `json:"expected,omitempty"`
	Got      string `json:"got,omitempty"`
}

// DemoReport is the JSON form of a demo run.
type DemoReport struct {
	Allocator string        `json:"allocator"`
	Checks    []CheckResult `json:"checks"`
	Failed    int           `json:"failed"`
}

var errChecksFailed = errors.New("functionality checks failed")

func runDemo() error {
	a, closeAlloc, err := newIntAllocator(allocName)
	if err != nil {
		return err
	}
	checks, err := runChecks(a)
	if cerr := closeAlloc(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	report := DemoReport{Allocator: allocName, Checks: checks}
	for _, c := range checks {
		if !c.Passed {
			report.Failed++
		}
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		printInfo("\n=== Functionality Checks (%s) ===\n", allocName)
		for _, c := range checks {
			if c.Passed {
				printInfo("%s: PASSED\n", c.Name)
			} else {
				printInfo("%s: FAILED (Expected: %s, Got: %s)\n", c.Name, c.Expected, c.Got)
			}
		}
	}

	if report.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errChecksFailed, report.Failed, len(checks))
	}
	return nil
}

// checker mirrors a vector against a reference slice.
type checker struct {
	results []CheckResult
}

func (c *checker) expect(name string, want, got any) {
	w, g := fmt.Sprint(want), fmt.Sprint(got)
	r := CheckResult{Name: name, Passed: w == g}
	if !r.Passed {
		r.Expected, r.Got = w, g
	}
	c.results = append(c.results, r)
}

func (c *checker) same(name string, ref []int, v *vector.Vector[int]) {
	c.expect(name, ref, v.Slice())
}

// runChecks returns an error only when the vector fails in a way no check
// anticipates. Everything else becomes a FAILED result.
func runChecks(a alloc.Allocator[int]) ([]CheckResult, error) {
	var c checker
	opts := []vector.Option[int]{vector.WithAllocator(a), vector.WithLogger[int](logger.L)}

	v, err := vector.New(opts...)
	if err != nil {
		return nil, err
	}
	defer v.Release()

	var ref []int
	for i := range 10 {
		if err := v.Append(i); err != nil {
			return nil, err
		}
		ref = append(ref, i)
	}
	c.expect("Size test", len(ref), v.Len())
	c.same("Element access test", ref, v)
	c.expect("Capacity test", true, v.Cap() >= v.Len())

	for range 5 {
		if err := v.PopBack(); err != nil {
			return nil, err
		}
		ref = ref[:len(ref)-1]
	}
	c.expect("Pop back test", len(ref), v.Len())
	c.same("Element values after pop back", ref, v)

	if err := v.Insert(2, 99); err != nil {
		return nil, err
	}
	ref = slices.Insert(ref, 2, 99)
	c.same("Insert test", ref, v)

	if err := v.Erase(0); err != nil {
		return nil, err
	}
	ref = slices.Delete(ref, 0, 1)
	c.same("Erase test", ref, v)

	if err := v.EraseRange(1, 3); err != nil {
		return nil, err
	}
	ref = slices.Delete(ref, 1, 3)
	c.same("Erase range test", ref, v)

	c.expect("Find test", slices.Index(ref, 4), vector.Index(v, 4))
	c.expect("Find missing test", vector.NotFound, vector.Index(v, 1000))

	_, err = v.At(v.Len())
	c.expect("Bounds check test", true, errors.Is(err, vector.ErrIndex))

	var rev []int
	for cur := v.CRBegin(); cur.Less(v.CREnd()); cur.Incr() {
		x, err := cur.Get()
		if err != nil {
			return nil, err
		}
		rev = append(rev, x)
	}
	want := slices.Clone(ref)
	slices.Reverse(want)
	c.expect("Reverse cursor test", want, rev)

	if err := v.Reserve(100); err != nil {
		return nil, err
	}
	c.expect("Reserve test", true, v.Cap() >= 100 && v.Len() == len(ref))

	if err := v.ShrinkToFit(); err != nil {
		return nil, err
	}
	c.expect("Shrink test", v.Len(), v.Cap())

	cp, err := v.Clone()
	if err != nil {
		return nil, err
	}
	if err := cp.Set(0, -1); err != nil {
		return nil, err
	}
	c.same("Clone independence test", ref, v)
	cp.Release()

	v.Clear()
	ref = ref[:0]
	c.expect("Clear test", len(ref), v.Len())
	err = v.PopBack()
	c.expect("Pop empty test", true, errors.Is(err, vector.ErrEmpty))

	rollback, err := checkRollback(a)
	if err != nil {
		return nil, err
	}
	c.results = append(c.results, rollback...)
	return c.results, nil
}

// checkRollback fills a vector to capacity and makes the growing append fail
// at the new element and during relocation.
func checkRollback(a alloc.Allocator[int]) ([]CheckResult, error) {
	var c checker
	for _, step := range []struct {
		name string
		nth  int
	}{
		{"Rollback on new element test", 1},
		{"Rollback on relocation test", 3},
	} {
		f := alloc.NewFaulty(a)
		w, err := vector.From([]int{0, 1, 2, 3, 4}, vector.WithAllocator[int](f), vector.WithCapacity[int](5))
		if err != nil {
			return nil, err
		}

		before, capBefore := slices.Clone(w.Slice()), w.Cap()
		f.FailNthConstruct(step.nth)
		err = w.Append(5)
		ok := errors.Is(err, vector.ErrConstruction) &&
			slices.Equal(before, w.Slice()) && w.Cap() == capBefore
		c.expect(step.name, true, ok)
		w.Release()
	}
	return c.results, nil
}
