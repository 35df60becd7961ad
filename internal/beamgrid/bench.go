package beamgrid

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

type BenchResult struct {
	Name    string
	Value   int
	Total   time.Duration
	PerIter time.Duration
}

type BenchReport struct {
	ID         uuid.UUID
	Started    time.Time
	Iterations int
	Results    []BenchResult
}

type benchFunc struct {
	name string
	fn   func(ctx context.Context, g *Grid) (int, error)
}

var benchFuncs = []benchFunc{
	{"single", func(_ context.Context, g *Grid) (int, error) {
		tr, err := Trace(g, DefaultEntry)
		if err != nil {
			return 0, err
		}
		return tr.Energized(), nil
	}},
	{"scan", func(ctx context.Context, g *Grid) (int, error) {
		rep, err := Scan(ctx, g, ScanOptions{})
		if err != nil {
			return 0, err
		}
		return rep.Max(), nil
	}},
	{"scan (memo)", func(ctx context.Context, g *Grid) (int, error) {
		rep, err := Scan(ctx, g, ScanOptions{Memoize: true})
		if err != nil {
			return 0, err
		}
		return rep.Max(), nil
	}},
}

// Bench times the single-entry count, the plain scan and the memoized scan,
// iters runs each.
func Bench(ctx context.Context, g *Grid, iters int) (*BenchReport, error) {
	if iters <= 0 {
		iters = DefaultBenchIters
	}
	rep := &BenchReport{ID: uuid.New(), Started: time.Now(), Iterations: iters}
	for _, bf := range benchFuncs {
		value, err := bf.fn(ctx, g)
		if err != nil {
			return nil, fmt.Errorf("bench %s: %w", bf.name, err)
		}
		begin := time.Now()
		for i := 0; i < iters; i++ {
			if _, err := bf.fn(ctx, g); err != nil {
				return nil, fmt.Errorf("bench %s: %w", bf.name, err)
			}
		}
		total := time.Since(begin)
		rep.Results = append(rep.Results, BenchResult{
			Name:    bf.name,
			Value:   value,
			Total:   total,
			PerIter: total / time.Duration(iters),
		})
		DebugLog("Bench %s %s: %d in %s", rep.ID, bf.name, iters, total)
	}
	return rep, nil
}

func (r *BenchReport) Print(w io.Writer) {
	fmt.Fprintf(w, "bench %s\n", r.ID)
	for _, res := range r.Results {
		fmt.Fprintf(w, "  %s: %d\n", res.Name, res.Value)
	}
	fmt.Fprintln(w)
	for _, res := range r.Results {
		fmt.Fprintf(w, "  %d %s in: %dus (%dus/iter)\n",
			r.Iterations, res.Name, res.Total.Microseconds(), res.PerIter.Microseconds())
	}
}
