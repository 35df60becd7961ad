package beamgrid

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of energized counts over a scan.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single value
	Median float64
	P90    float64
}

// Summarize computes a Summary over counts. An empty input yields the zero Summary.
func Summarize(counts []int) Summary {
	if len(counts) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(counts))
	for i, c := range counts {
		xs[i] = float64(c)
	}
	sort.Float64s(xs)

	s := Summary{
		N:      len(xs),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, xs, nil),
	}
	if len(xs) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	} else {
		s.Mean = xs[0]
	}
	return s
}

// SummarizeScan summarises the per-entry counts of rep. A memoized report only
// bounds the entries it answered from the memo, so g is scanned again without
// the memo to get exact counts.
func SummarizeScan(ctx context.Context, g *Grid, rep *ScanReport) (Summary, error) {
	counts, err := rep.Counts()
	if errors.Is(err, ErrBoundedCounts) {
		DebugLog("Stats: %v, rescanning without memo", err)
		var plain *ScanReport
		if plain, err = Scan(ctx, g, ScanOptions{}); err != nil {
			return Summary{}, err
		}
		counts, err = plain.Counts()
	}
	if err != nil {
		return Summary{}, err
	}
	return Summarize(counts), nil
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%.0f max=%.0f mean=%.2f stddev=%.2f median=%.0f p90=%.0f",
		s.N, s.Min, s.Max, s.Mean, s.StdDev, s.Median, s.P90)
}
