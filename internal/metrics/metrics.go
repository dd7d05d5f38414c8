// Package metrics exposes simulation counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reseed reasons.
const (
	ReasonStill   = "still"
	ReasonExtinct = "extinct"
	ReasonCycle   = "cycle"
	ReasonManual  = "manual"
)

// Collectors groups the session metrics.
type Collectors struct {
	// Generations counts advances.
	Generations prometheus.Counter
	// Reseeds counts reseeds by reason.
	Reseeds *prometheus.CounterVec
	// Population is the live cell count after the last advance.
	Population prometheus.Gauge
	// ChangedCells tracks cells redrawn per generation.
	ChangedCells prometheus.Histogram
	// StepDuration tracks advance plus paint latency.
	StepDuration prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Collectors {
	f := promauto.With(reg)
	return &Collectors{
		Generations: f.NewCounter(prometheus.CounterOpts{
			Name: "tinylife_generations_total",
			Help: "Generations advanced",
		}),
		Reseeds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tinylife_reseeds_total",
			Help: "Grid reseeds by reason",
		}, []string{"reason"}),
		Population: f.NewGauge(prometheus.GaugeOpts{
			Name: "tinylife_population",
			Help: "Live cells after the last generation",
		}),
		ChangedCells: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tinylife_changed_cells",
			Help:    "Cells redrawn per generation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9), // 1 to 65536
		}),
		StepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tinylife_step_duration_seconds",
			Help:    "Advance and paint duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
		}),
	}
}
