package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/lukaszgryglicki/beamgrid/internal/beamgrid"
)

var (
	debug       bool
	metricsFile string
	traceSpans  bool

	tracerProvider *sdktrace.TracerProvider

	entryRow int
	entryCol int
	entryDir string
	showMap  bool

	memoize bool
	stats   bool
	render  beamgrid.RenderCfg
	benchN  int
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "beamgrid",
		Short: "Trace light beams through a grid of mirrors and splitters",
		Long: `beamgrid walks a beam through a grid of '.', '|', '-', '/' and '\' tiles
and counts the cells it energizes, from one entry or from every edge.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			beamgrid.Debug = debug || os.Getenv("DEBUG") != ""
			beamgrid.SetLogger(beamgrid.NewLogger(os.Stderr, beamgrid.Debug))
			if !traceSpans {
				return nil
			}
			tp, err := beamgrid.NewStdoutTracerProvider(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			tracerProvider = tp
			beamgrid.SetTracerProvider(tp)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose debug logging and beam event stats")
	root.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	root.PersistentFlags().BoolVar(&traceSpans, "trace", false, "print OpenTelemetry spans as JSON to stderr")

	runCmd := &cobra.Command{
		Use:   "run [config]",
		Short: "Run everything a JSON or YAML config describes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRun,
	}

	energizeCmd := &cobra.Command{
		Use:   "energize <grid>",
		Short: "Count cells energized by a single beam",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnergize,
	}
	energizeCmd.Flags().IntVar(&entryRow, "row", 0, "entry row")
	energizeCmd.Flags().IntVar(&entryCol, "col", 0, "entry column")
	energizeCmd.Flags().StringVar(&entryDir, "dir", "right", "entry direction (up, down, left, right)")
	energizeCmd.Flags().BoolVar(&showMap, "render", false, "print the energized map")

	scanCmd := &cobra.Command{
		Use:   "scan <grid>",
		Short: "Find the boundary entry that energizes the most cells",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	scanCmd.Flags().BoolVar(&memoize, "memo", true, "reuse counts through the exit memo")
	scanCmd.Flags().BoolVar(&stats, "stats", false, "print statistics over all entries")
	scanCmd.Flags().StringVar(&render.PNG, "png", "", "write a heatmap PNG")
	scanCmd.Flags().StringVar(&render.GIF, "gif", "", "write an animated GIF, one frame per entry")
	scanCmd.Flags().StringVar(&render.Raw, "raw", "", "write a raw int32 heatmap")
	scanCmd.Flags().IntVar(&render.Scale, "scale", beamgrid.DefaultScale, "pixels per cell")
	scanCmd.Flags().IntVar(&render.GIFDelay, "gif-delay", beamgrid.DefaultGIFDelay, "GIF frame delay in 100ths of a second")
	scanCmd.Flags().Float64Var(&render.Gamma, "gamma", beamgrid.DefaultGamma, "heatmap gamma")

	benchCmd := &cobra.Command{
		Use:   "bench <grid>",
		Short: "Time the single count, the plain scan and the memoized scan",
		Args:  cobra.ExactArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchN, "iters", beamgrid.DefaultBenchIters, "iterations per measurement")

	root.AddCommand(runCmd, energizeCmd, scanCmd, benchCmd)
	return root
}

func runRun(cmd *cobra.Command, args []string) error {
	cfgPath := "beamgrid.yaml"
	if len(args) > 0 {
		cfgPath = args[0]
	}
	cfg, err := beamgrid.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	_, err = beamgrid.RunConfig(cmd.Context(), cfg, cmd.OutOrStdout())
	return err
}

func runEnergize(cmd *cobra.Command, args []string) error {
	g, err := beamgrid.LoadGrid(args[0])
	if err != nil {
		return err
	}
	dir, err := beamgrid.ParseDirection(entryDir)
	if err != nil {
		return err
	}
	start := beamgrid.State{Pos: beamgrid.Position{Row: entryRow, Col: entryCol}, Dir: dir}
	tr, err := beamgrid.Trace(g, start)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d\n", tr.Energized())
	if showMap {
		fmt.Fprint(out, beamgrid.RenderEnergized(g, tr.Tiles()))
	}
	return finish()
}

func runScan(cmd *cobra.Command, args []string) error {
	g, err := beamgrid.LoadGrid(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	rep, err := beamgrid.Scan(ctx, g, beamgrid.ScanOptions{Memoize: memoize})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d (entry %v, traversals %d, memo hits %d, %s)\n",
		rep.Max(), rep.Best.Entry, rep.Traversals, rep.MemoHits, rep.Elapsed)
	if stats {
		s, err := beamgrid.SummarizeScan(ctx, g, rep)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v\n", s)
	}
	if err := beamgrid.WriteRenders(ctx, g, nil, render, out); err != nil {
		return err
	}
	return finish()
}

func runBench(cmd *cobra.Command, args []string) error {
	g, err := beamgrid.LoadGrid(args[0])
	if err != nil {
		return err
	}
	rep, err := beamgrid.Bench(cmd.Context(), g, benchN)
	if err != nil {
		return err
	}
	rep.Print(cmd.OutOrStdout())
	return finish()
}

// finish writes metrics when asked to.
func finish() error {
	if metricsFile == "" {
		return nil
	}
	return beamgrid.WriteMetrics(metricsFile)
}

// shutdownTracing flushes spans recorded under --trace.
func shutdownTracing() error {
	if tracerProvider == nil {
		return nil
	}
	defer func() {
		tracerProvider = nil
		beamgrid.SetTracerProvider(nil)
	}()
	return tracerProvider.Shutdown(context.Background())
}
