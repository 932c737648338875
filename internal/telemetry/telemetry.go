// Package telemetry holds the Prometheus collectors exported on /metrics.
package telemetry

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skuledger_store_query_duration_seconds",
		Help:    "Duration of SQL statements issued by the store",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"op"})

	transactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skuledger_store_transactions_total",
		Help: "Store transactions by kind and outcome",
	}, []string{"kind", "outcome"})

	ingestRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skuledger_ingest_rows_total",
		Help: "Export rows processed by ingestion",
	}, []string{"result"})

	changesComputed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "skuledger_delta_changes",
		Help: "Change records produced by the last delta computation",
	})

	viewRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "skuledger_view_rows",
		Help: "Rows in the current inventory view after the last refresh",
	})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skuledger_operation_duration_seconds",
		Help:    "Duration of ingest, delta, refresh and metrics operations",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"operation"})

	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skuledger_jobs_total",
		Help: "Background jobs by kind and final state",
	}, []string{"kind", "state"})

	pendingSource atomic.Pointer[func() int]

	pendingJobs = promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "skuledger_jobs_pending",
		Help: "Background jobs accepted and not finished yet",
	}, func() float64 {
		if fn := pendingSource.Load(); fn != nil {
			return float64((*fn)())
		}
		return 0
	})
)

func ObserveQuery(op string, d time.Duration) {
	queryDuration.WithLabelValues(op).Observe(d.Seconds())
}

func CountTransaction(kind string, err error) {
	outcome := "commit"
	if err != nil {
		outcome = "rollback"
	}
	transactionsTotal.WithLabelValues(kind, outcome).Inc()
}

func CountIngestedRows(saved, skipped int) {
	ingestRowsTotal.WithLabelValues("saved").Add(float64(saved))
	ingestRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

func SetChangesComputed(n int) {
	changesComputed.Set(float64(n))
}

func SetViewRows(n int) {
	viewRows.Set(float64(n))
}

// Timer starts timing an operation; call the returned func when it ends.
func Timer(operation string) func() {
	t := prometheus.NewTimer(operationDuration.WithLabelValues(operation))
	return func() { t.ObserveDuration() }
}

func CountJob(kind, state string) {
	jobsTotal.WithLabelValues(kind, state).Inc()
}

// TrackPendingJobs makes the pending jobs gauge read fn at scrape time.
func TrackPendingJobs(fn func() int) {
	pendingSource.Store(&fn)
}
