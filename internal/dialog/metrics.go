package dialog

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts dialog traffic. A nil *Metrics records nothing.
type Metrics struct {
	opened   *prometheus.CounterVec
	resolved *prometheus.CounterVec
	dropped  *prometheus.CounterVec
	pending  prometheus.Gauge
}

// NewMetrics creates the dialog collectors and registers them with reg when
// reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		opened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "showcase",
				Subsystem: "dialog",
				Name:      "opened_total",
				Help:      "Dialogs accepted by a host",
			},
			[]string{"kind"},
		),
		resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "showcase",
				Subsystem: "dialog",
				Name:      "resolved_total",
				Help:      "Dialogs resolved, by outcome (value|cancel)",
			},
			[]string{"kind", "outcome"},
		),
		dropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "showcase",
				Subsystem: "dialog",
				Name:      "dropped_total",
				Help:      "Dialogs opened while no host was mounted",
			},
			[]string{"kind"},
		),
		pending: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "showcase",
				Subsystem: "dialog",
				Name:      "pending",
				Help:      "Dialogs waiting for an answer",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.opened, m.resolved, m.dropped, m.pending)
	}
	return m
}

func (m *Metrics) recordOpened(kind string) {
	if m == nil {
		return
	}
	m.opened.WithLabelValues(kind).Inc()
	m.pending.Inc()
}

func (m *Metrics) recordResolved(kind, outcome string) {
	if m == nil {
		return
	}
	m.resolved.WithLabelValues(kind, outcome).Inc()
	m.pending.Dec()
}

func (m *Metrics) recordDropped(kind string) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(kind).Inc()
}
