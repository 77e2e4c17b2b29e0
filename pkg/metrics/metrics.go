// Package metrics holds the application's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Result labels for LintRuns.
const (
	ResultCompleted = "completed"
	ResultFailed    = "failed"
)

//nolint: gochecknoglobals
var (
	// LintRuns counts finished lint jobs by result.
	LintRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "corpus",
		Name:      "lint_runs_total",
		Help:      "Number of finished lint runs by result.",
	}, []string{"result"})

	// LintFindings counts findings produced by completed lint runs.
	LintFindings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "corpus",
		Name:      "lint_findings_total",
		Help:      "Number of findings produced by completed lint runs.",
	})

	// DocumentsIngested counts ingested document revisions.
	DocumentsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "corpus",
		Name:      "documents_ingested_total",
		Help:      "Number of document revisions ingested from the corpus.",
	})
)
