package beamgrid

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// EntryResult is the energized count for one boundary entry. When Cached is
// set the count came from the exit memo and is only an upper bound on the
// entry's own count.
type EntryResult struct {
	Entry     State
	Energized int
	Cached    bool // answered by the exit memo rather than a fresh walk
}

// ScanReport summarises a scan over every boundary entry.
type ScanReport struct {
	Results    []EntryResult // in EntryStates order
	Best       EntryResult   // first walked entry reaching the maximum
	Traversals int           // walks actually performed
	MemoHits   int
	Memoized   bool
	Elapsed    time.Duration
}

// Max returns the largest energized count over all entries.
func (r *ScanReport) Max() int { return r.Best.Energized }

// Counts returns the per-entry energized counts in scan order. It fails with
// ErrBoundedCounts when any entry was answered from the exit memo.
func (r *ScanReport) Counts() ([]int, error) {
	if r.MemoHits > 0 {
		return nil, fmt.Errorf("%w: %d of %d entries", ErrBoundedCounts, r.MemoHits, len(r.Results))
	}
	out := make([]int, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Energized
	}
	return out, nil
}

type ScanOptions struct {
	Memoize bool // reuse counts through an ExitMemo
}

// EntryStates lists every boundary entry: for each row the left edge heading
// right and the right edge heading left, then for each column the top edge
// heading down and the bottom edge heading up. Corner cells appear twice.
func EntryStates(g *Grid) []State {
	h, w := g.height, g.width
	out := make([]State, 0, 2*(h+w))
	for r := 0; r < h; r++ {
		out = append(out,
			State{Pos: Position{r, 0}, Dir: Right},
			State{Pos: Position{r, w - 1}, Dir: Left},
		)
	}
	for c := 0; c < w; c++ {
		out = append(out,
			State{Pos: Position{0, c}, Dir: Down},
			State{Pos: Position{h - 1, c}, Dir: Up},
		)
	}
	return out
}

// Scan energizes the grid from every boundary entry. The context is checked
// between entries; a single walk always runs to completion.
func Scan(ctx context.Context, g *Grid, opts ScanOptions) (*ScanReport, error) {
	entries := EntryStates(g)
	ctx, span := tracer.Start(ctx, "beamgrid.Scan",
		trace.WithAttributes(
			attribute.Int("grid.height", g.height),
			attribute.Int("grid.width", g.width),
			attribute.Int("entries", len(entries)),
			attribute.Bool("memoize", opts.Memoize),
		),
	)
	defer span.End()

	start := time.Now()
	var memo *ExitMemo
	if opts.Memoize {
		memo = NewExitMemo(g)
	}
	rep := &ScanReport{
		Results:  make([]EntryResult, 0, len(entries)),
		Memoized: opts.Memoize,
	}
	for _, st := range entries {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "scan cancelled")
			return nil, err
		}
		res := EntryResult{Entry: st}
		var err error
		if memo != nil {
			res.Energized, res.Cached, err = memo.lookup(st)
		} else {
			var tr *Traversal
			if tr, err = Trace(g, st); err == nil {
				res.Energized = tr.Energized()
			}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "traversal failed")
			return nil, fmt.Errorf("scan entry %v: %w", st, err)
		}
		if res.Cached {
			rep.MemoHits++
		} else {
			rep.Traversals++
		}
		// every memo value is the count of an earlier walked entry
		if !res.Cached && res.Energized > rep.Best.Energized {
			rep.Best = res
		}
		rep.Results = append(rep.Results, res)
	}
	rep.Elapsed = time.Since(start)
	scanDuration.WithLabelValues(strconv.FormatBool(opts.Memoize)).Observe(rep.Elapsed.Seconds())

	span.SetAttributes(
		attribute.Int("max", rep.Max()),
		attribute.Int("traversals", rep.Traversals),
		attribute.Int("memo_hits", rep.MemoHits),
	)
	DebugLog("Scan memo=%v: max=%d at %v, traversals=%d, memo hits=%d, time=%s",
		opts.Memoize, rep.Max(), rep.Best.Entry, rep.Traversals, rep.MemoHits, rep.Elapsed)
	return rep, nil
}

// MaxEnergized traces every boundary entry and returns the largest count.
func MaxEnergized(g *Grid) (int, error) {
	rep, err := Scan(context.Background(), g, ScanOptions{})
	if err != nil {
		return 0, err
	}
	return rep.Max(), nil
}

// MaxEnergizedMemo is MaxEnergized through an ExitMemo.
func MaxEnergizedMemo(g *Grid) (int, error) {
	rep, err := Scan(context.Background(), g, ScanOptions{Memoize: true})
	if err != nil {
		return 0, err
	}
	return rep.Max(), nil
}
