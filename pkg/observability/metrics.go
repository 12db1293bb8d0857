package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/turing/pkg/domain"
)

// Metrics exports registry activity as Prometheus collectors.
type Metrics struct {
	operations *prometheus.CounterVec
	active     *prometheus.GaugeVec
	initial    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the global handler.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_registry_operations_total",
				Help: "Total number of applied registry mutations",
			},
			[]string{"entity", "op"},
		),
		active: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "turing_registry_active",
				Help: "Number of live entities in the registry",
			},
			[]string{"entity"},
		),
		initial: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "turing_registry_has_initial",
				Help: "1 when the machine has an initial state",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.active, m.initial} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns the callbacks that feed the collectors.
func (m *Metrics) Hooks() domain.RegistryHooks {
	return domain.RegistryHooks{
		OnStateAdded:        m.record("add"),
		OnStateDeleted:      m.record("delete"),
		OnTransitionAdded:   m.record("add"),
		OnTransitionDeleted: m.record("delete"),
		OnCleared:           m.record("clear"),
		OnInitialChanged: func(e *domain.RegistryEvent) {
			m.operations.WithLabelValues(string(e.Entity), "set_initial").Inc()
			if e.Name != "" {
				m.initial.Set(1)
			} else {
				m.initial.Set(0)
			}
		},
	}
}

func (m *Metrics) record(op string) func(*domain.RegistryEvent) {
	return func(e *domain.RegistryEvent) {
		m.operations.WithLabelValues(string(e.Entity), op).Inc()
		m.active.WithLabelValues(string(e.Entity)).Set(float64(e.Active))
	}
}

// HasInitial returns the gauge tracking whether the machine has a head.
func (m *Metrics) HasInitial() prometheus.Gauge {
	return m.initial
}

// Active returns the live-entity gauge for entity.
func (m *Metrics) Active(entity domain.Entity) prometheus.Gauge {
	return m.active.WithLabelValues(string(entity))
}

// Operations returns the mutation counter for entity and op.
func (m *Metrics) Operations(entity domain.Entity, op string) prometheus.Counter {
	return m.operations.WithLabelValues(string(entity), op)
}
