package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Batch outcome label values.
const (
	OutcomeAccepted   = "accepted"
	OutcomeRejected   = "rejected"
	OutcomeShapeError = "shape_error"
)

// Metrics holds the registered instruments.
type Metrics struct {
	BatchesTotal   *prometheus.CounterVec
	EventsTotal    prometheus.Counter
	AnomaliesTotal *prometheus.CounterVec
}

// New creates and registers all instruments on reg. liveContainers, when
// non-nil, backs a gauge reporting the current store population.
func New(reg prometheus.Registerer, liveContainers func() float64) *Metrics {
	m := &Metrics{
		BatchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tracking",
			Name:      "batches_total",
			Help:      "Processed batches by outcome (accepted, rejected, shape_error)",
		}, []string{"outcome"}),
		EventsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tracking",
			Name:      "events_total",
			Help:      "Events admitted in accepted batches",
		}),
		AnomaliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tracking",
			Name:      "anomalies_total",
			Help:      "Detected anomalies by type",
		}, []string{"type"}),
	}
	reg.MustRegister(m.BatchesTotal, m.EventsTotal, m.AnomaliesTotal)

	if liveContainers != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "tracking",
			Name:      "containers_live",
			Help:      "Containers currently held in the summary store",
		}, liveContainers))
	}
	return m
}
