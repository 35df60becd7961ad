package beamgrid

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// traversalsTotal counts completed traversals.
	// Labels: mode = "plain" | "exits"
	traversalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beamgrid_traversals_total",
		Help: "Completed beam traversals by tracer mode",
	}, []string{"mode"})

	// memoLookups counts exit memo lookups.
	// Labels: result = "hit" | "miss"
	memoLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beamgrid_exit_memo_lookups_total",
		Help: "Exit memo lookups by result",
	}, []string{"result"})

	energizedTiles = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "beamgrid_energized_tiles",
		Help:    "Energized tiles per traversal",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "beamgrid_scan_duration_seconds",
		Help:    "Duration of a full boundary scan",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"memo"})
)

// WriteMetrics dumps the default registry in the Prometheus text format.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	DebugLog("Wrote metrics to %s", path)
	return nil
}
