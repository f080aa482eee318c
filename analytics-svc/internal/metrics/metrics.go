// Package metrics exposes Prometheus instruments for ingestion, range queries and
// snapshot rebuilds.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"overcooked-analytics/analytics-svc/internal/domain"
)

const namespace = "overcooked"

var (
	// OrdersIngested counts accepted orders by source (file, http, kafka, postgres).
	OrdersIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "orders_ingested_total",
		Help:      "Orders accepted into the store",
	}, []string{"source"})

	// OrdersRejected counts orders that were not stored, by reason (malformed, capacity).
	OrdersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "orders_rejected_total",
		Help:      "Orders rejected by the store",
	}, []string{"source", "reason"})

	RangeQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "range_queries_total",
		Help:      "Date range queries by outcome",
	}, []string{"outcome"})

	RebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "rebuild_duration_seconds",
		Help:      "Time spent sorting the index and rebuilding the tree and graph",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})

	SnapshotOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "snapshot_orders",
		Help:      "Orders covered by the current snapshot",
	})
)

// Outcome classifies an error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrCapacity):
		return "capacity"
	case errors.Is(err, domain.ErrInvalidReference):
		return "invalid_reference"
	default:
		return "error"
	}
}

// ObserveIngest records the result of storing one order from source.
func ObserveIngest(source string, err error) {
	switch {
	case err == nil:
		OrdersIngested.WithLabelValues(source).Inc()
	case errors.Is(err, domain.ErrCapacity):
		OrdersRejected.WithLabelValues(source, "capacity").Inc()
	default:
		OrdersRejected.WithLabelValues(source, "malformed").Inc()
	}
}

func ObserveLoad(source string, res domain.LoadResult) {
	OrdersIngested.WithLabelValues(source).Add(float64(res.Accepted))
	OrdersRejected.WithLabelValues(source, "malformed").Add(float64(res.Malformed))
	OrdersRejected.WithLabelValues(source, "capacity").Add(float64(res.Dropped))
}

func ObserveRebuild(start time.Time, orders int) {
	RebuildDuration.Observe(time.Since(start).Seconds())
	SnapshotOrders.Set(float64(orders))
}
