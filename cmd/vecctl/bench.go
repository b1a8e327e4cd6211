package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/vectorkit/internal/logger"
	"github.com/joshuapare/vectorkit/vector"
	"github.com/joshuapare/vectorkit/vector/alloc"
)

var (
	benchN    int
	benchSeed int64
	benchLang string
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVarP(&benchN, "count", "n", 1_000_000, "Elements per benchmark")
	cmd.Flags().Int64Var(&benchSeed, "seed", 1, "Seed for the random access pattern")
	cmd.Flags().StringVar(&benchLang, "lang", "en", "BCP 47 tag used to format numbers")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time vector operations against a built-in slice",
		Long: `The bench command times append, pop back, random access, a mixed
workload, insert at the front and erase at the front for vector.Vector[int]
and for a plain []int, and prints both timings with their ratio.

Example:
  vecctl bench
  vecctl bench -n 100000 --alloc pool
  vecctl bench --lang de --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
	return cmd
}

// BenchResult is one timed comparison.
type BenchResult struct {
	Name     string  `json:"name"`
	N        int     `json:"n"`
	VectorMS float64 `json:"vector_ms"`
	SliceMS  float64 `json:"slice_ms"`
	Ratio    float64 `json:"ratio"`
}

type benchCase struct {
	name string
	// quadratic cases run over a smaller n
	quadratic bool
	vector    func(v *vector.Vector[int], n int, idx []int) error
	slice     func(n int, idx []int)
}

var sink int

var benchCases = []benchCase{
	{
		name: "Append",
		vector: func(v *vector.Vector[int], n int, _ []int) error {
			for i := range n {
				if err := v.Append(i); err != nil {
					return err
				}
			}
			return nil
		},
		slice: func(n int, _ []int) {
			s := make([]int, 0, vector.DefaultCapacity)
			for i := range n {
				s = append(s, i)
			}
			sink = len(s)
		},
	},
	{
		name: "Pop back",
		vector: func(v *vector.Vector[int], n int, _ []int) error {
			if err := v.Resize(n, 1); err != nil {
				return err
			}
			for range n {
				if err := v.PopBack(); err != nil {
					return err
				}
			}
			return nil
		},
		slice: func(n int, _ []int) {
			s := make([]int, n)
			for range n {
				s = s[:len(s)-1]
			}
			sink = len(s)
		},
	},
	{
		name: "Random access",
		vector: func(v *vector.Vector[int], n int, idx []int) error {
			if err := v.Resize(n, 1); err != nil {
				return err
			}
			sum := 0
			for _, i := range idx {
				x, err := v.At(i)
				if err != nil {
					return err
				}
				sum += x
			}
			sink = sum
			return nil
		},
		slice: func(n int, idx []int) {
			s := make([]int, n)
			sum := 0
			for _, i := range idx {
				sum += s[i]
			}
			sink = sum
		},
	},
	{
		name: "Mixed",
		vector: func(v *vector.Vector[int], n int, _ []int) error {
			for i := range n / 2 {
				if err := v.Append(i); err != nil {
					return err
				}
			}
			for range n / 4 {
				if err := v.PopBack(); err != nil {
					return err
				}
			}
			for i := range n / 4 {
				if err := v.Append(i); err != nil {
					return err
				}
			}
			return nil
		},
		slice: func(n int, _ []int) {
			var s []int
			for i := range n / 2 {
				s = append(s, i)
			}
			s = s[:len(s)-n/4]
			for i := range n / 4 {
				s = append(s, i)
			}
			sink = len(s)
		},
	},
	{
		name:      "Insert front",
		quadratic: true,
		vector: func(v *vector.Vector[int], n int, _ []int) error {
			for i := range n {
				if err := v.Insert(0, i); err != nil {
					return err
				}
			}
			return nil
		},
		slice: func(n int, _ []int) {
			var s []int
			for i := range n {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = i
			}
			sink = len(s)
		},
	},
	{
		name:      "Erase front",
		quadratic: true,
		vector: func(v *vector.Vector[int], n int, _ []int) error {
			if err := v.Resize(n, 1); err != nil {
				return err
			}
			for range n {
				if err := v.Erase(0); err != nil {
					return err
				}
			}
			return nil
		},
		slice: func(n int, _ []int) {
			s := make([]int, n)
			for range n {
				s = append(s[:0], s[1:]...)
			}
			sink = len(s)
		},
	},
}

// quadraticLimit caps n for the O(n^2) front operations.
const quadraticLimit = 20_000

func runBench() error {
	if benchN <= 0 {
		return fmt.Errorf("-n must be positive, got %d", benchN)
	}
	tag, err := language.Parse(benchLang)
	if err != nil {
		return fmt.Errorf("invalid --lang: %w", err)
	}
	p := message.NewPrinter(tag)

	a, closeAlloc, err := newIntAllocator(allocName)
	if err != nil {
		return err
	}
	results, err := runBenchCases(a, benchN, benchSeed)
	if cerr := closeAlloc(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(results)
	}
	printInfo("\n=== Performance (%s allocator) ===\n", allocName)
	for _, r := range results {
		printInfo("%s\n", p.Sprintf("%s %d elements:", r.Name, r.N))
		printInfo("  Vector: %s\n", p.Sprintf("%.3f ms", r.VectorMS))
		printInfo("  Slice:  %s\n", p.Sprintf("%.3f ms", r.SliceMS))
		printInfo("  Ratio (vector/slice): %s\n", p.Sprintf("%.2f", r.Ratio))
	}
	return nil
}

func runBenchCases(a alloc.Allocator[int], n int, seed int64) ([]BenchResult, error) {
	rng := rand.New(rand.NewSource(seed))
	results := make([]BenchResult, 0, len(benchCases))
	for _, bc := range benchCases {
		size := n
		if bc.quadratic {
			size = min(n, quadraticLimit)
		}
		idx := make([]int, size)
		for i := range idx {
			idx[i] = rng.Intn(size)
		}

		v, err := vector.New(vector.WithAllocator(a), vector.WithLogger[int](logger.L))
		if err != nil {
			return nil, err
		}
		start := time.Now()
		err = bc.vector(v, size, idx)
		vecTime := time.Since(start)
		v.Release()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", bc.name, err)
		}

		start = time.Now()
		bc.slice(size, idx)
		sliceTime := time.Since(start)

		logger.Debug("bench case done", "case", bc.name, "n", size,
			"vector", vecTime, "slice", sliceTime)
		results = append(results, BenchResult{
			Name:     bc.name,
			N:        size,
			VectorMS: millis(vecTime),
			SliceMS:  millis(sliceTime),
			Ratio:    ratio(vecTime, sliceTime),
		})
	}
	return results, nil
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func ratio(a, b time.Duration) float64 {
	if b <= 0 {
		b = 1
	}
	return float64(a) / float64(b)
}
