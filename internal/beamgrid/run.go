package beamgrid

import (
	"context"
	"fmt"
	"io"
)

// Result holds what a Run computed.
type Result struct {
	Single  *Traversal
	Scan    *ScanReport
	Summary *Summary
	Bench   *BenchReport
}

// Run loads the config at cfgPath and executes it, writing a report to w.
func Run(ctx context.Context, cfgPath string, w io.Writer) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	_, err = RunConfig(ctx, cfg, w)
	return err
}

// RunConfig loads the grid, energizes it from the configured entry, scans every
// boundary entry and then writes whatever renders, benchmark and metrics the
// config asks for.
func RunConfig(ctx context.Context, cfg *Config, w io.Writer) (*Result, error) {
	g, err := LoadGrid(cfg.Input)
	if err != nil {
		return nil, err
	}
	entry := DefaultEntry
	if cfg.Entry != nil {
		entry = cfg.Entry.State()
	}

	res := &Result{}
	if res.Single, err = Trace(g, entry); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "  part1: %d\n", res.Single.Energized())

	if res.Scan, err = Scan(ctx, g, ScanOptions{Memoize: cfg.Memoize}); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "  part2: %d (entry %v)\n", res.Scan.Max(), res.Scan.Best.Entry)

	if cfg.Stats {
		s, err := SummarizeScan(ctx, g, res.Scan)
		if err != nil {
			return nil, err
		}
		res.Summary = &s
		fmt.Fprintf(w, "  stats: %v\n", s)
	}

	if err := WriteRenders(ctx, g, res.Single, cfg.Render, w); err != nil {
		return nil, err
	}

	if cfg.BenchIters > 0 {
		if res.Bench, err = Bench(ctx, g, cfg.BenchIters); err != nil {
			return nil, err
		}
		fmt.Fprintln(w)
		res.Bench.Print(w)
	}

	if Debug {
		beamStats()
	}
	if cfg.MetricsFile != "" {
		if err := WriteMetrics(cfg.MetricsFile); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// WriteRenders produces the outputs selected in rc. single is used for the
// text map and may be nil when rc.Text is false.
func WriteRenders(ctx context.Context, g *Grid, single *Traversal, rc RenderCfg, w io.Writer) error {
	if rc.Text && single != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, RenderEnergized(g, single.Tiles()))
	}
	if rc.PNG != "" || rc.Raw != "" {
		heat, err := Heatmap(ctx, g)
		if err != nil {
			return err
		}
		if rc.PNG != "" {
			if err := SaveHeatmapPNG16(g, heat, rc.PNG, rc.Scale, rc.Gamma); err != nil {
				return err
			}
			DebugLog("Saved heatmap PNG: %s", rc.PNG)
		}
		if rc.Raw != "" {
			if err := SaveRawHeatmap(g, heat, rc.Raw); err != nil {
				return err
			}
			DebugLog("Saved raw heatmap: %s", rc.Raw)
		}
	}
	if rc.GIF != "" {
		if err := SaveEntriesGIF(ctx, g, rc.GIF, rc.Scale, rc.GIFDelay); err != nil {
			return err
		}
		DebugLog("Saved entries GIF: %s", rc.GIF)
	}
	return nil
}
