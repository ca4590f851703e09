/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package usage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess   = "success"
	statusError     = "error"
	statusOverQuota = "over_quota"
)

// Metrics holds the Prometheus metrics updated by usage runs
type Metrics struct {
	tableSizeBytes *prometheus.GaugeVec
	tableItems     *prometheus.GaugeVec
	runsTotal      *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
}

// NewMetrics creates the usage metrics and registers them with reg.
// A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		tableSizeBytes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "storemeter_table_size_bytes",
				Help: "Estimated stored size of a table in bytes",
			},
			[]string{"table"},
		),

		tableItems: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "storemeter_table_items",
				Help: "Number of items counted in a table",
			},
			[]string{"table"},
		),

		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storemeter_usage_runs_total",
				Help: "Total number of usage recomputations",
			},
			[]string{"table", "status"},
		),

		runDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storemeter_usage_run_duration_seconds",
				Help:    "Usage recomputation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"table"},
		),
	}
}

func (m *Metrics) recordUsage(table string, bytes, items int64) {
	m.tableSizeBytes.WithLabelValues(table).Set(float64(bytes))
	m.tableItems.WithLabelValues(table).Set(float64(items))
}

func (m *Metrics) recordRun(table, status string, seconds float64) {
	m.runsTotal.WithLabelValues(table, status).Inc()
	m.runDuration.WithLabelValues(table).Observe(seconds)
}
