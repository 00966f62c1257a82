package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call metrics - one sample per host entry point
var (
	CallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daic_calls_total",
			Help: "Total number of state-changing calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	CallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "daic_call_duration_seconds",
			Help:    "Time taken to execute and commit a state-changing call",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Ledger metrics - derived from committed events
var (
	ContributionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daic_contributions_total",
		Help: "Total number of recorded contributions",
	})

	ProposalsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daic_proposals_created_total",
		Help: "Total number of proposals created",
	})

	StatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daic_proposal_status_changes_total",
			Help: "Total number of proposal status changes by target status",
		},
		[]string{"status"},
	)

	MatchingPool = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "daic_matching_pool",
		Help: "Current matching pool, as a float approximation of the 256-bit amount",
	})

	ProposalCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "daic_proposal_count",
		Help: "Number of proposals ever created",
	})

	BlockHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "daic_block_height",
		Help: "Height of the last committed call",
	})
)

// Indexer metrics
var (
	EventsIndexed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daic_events_indexed_total",
			Help: "Total number of events written to the read model by type",
		},
		[]string{"event_type"},
	)

	IndexerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daic_indexer_errors_total",
		Help: "Total number of events the read model failed to apply",
	})
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

// ObserveCall records the outcome and latency of one host call.
func ObserveCall(operation string, start time.Time, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	CallsTotal.WithLabelValues(operation, result).Inc()
	CallDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
