package porkchop

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects grid evaluation statistics.
type Metrics struct {
	cells    *prometheus.CounterVec
	branches *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics returns the grid collectors, registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cells: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "porkchop_cells_total",
				Help: "Grid cells by outcome",
			},
			[]string{"outcome"},
		),
		branches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "porkchop_branch_total",
				Help: "Branch kept for the evaluated cells",
			},
			[]string{"path"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "porkchop_grid_duration_seconds",
				Help:    "Time spent evaluating a whole grid",
				Buckets: prometheus.ExponentialBuckets(1e-3, 4, 10),
			},
			[]string{"variant"},
		),
	}
	reg.MustRegister(m.cells, m.branches, m.duration)
	return m
}

func (m *Metrics) observe(variant string, t tally, elapsed time.Duration) {
	for _, o := range [...]Outcome{Infeasible, Skipped, Evaluated} {
		m.cells.WithLabelValues(o.String()).Add(float64(t.outcomes[o]))
	}
	for _, p := range [...]Path{NoPath, ShortPath, LongPath} {
		m.branches.WithLabelValues(p.String()).Add(float64(t.paths[p]))
	}
	m.duration.WithLabelValues(variant).Observe(elapsed.Seconds())
}
