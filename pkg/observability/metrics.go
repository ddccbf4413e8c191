package observability

import (
	"errors"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the automata counters. The machine name comes from each
// event, so one Metrics serves any number of machines.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Rejections  *prometheus.CounterVec
	Resets      *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg. Counters that
// are already registered are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_transitions_total",
				Help: "Total number of confirmed transitions",
			},
			[]string{"machine", "from", "symbol", "to"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_rejections_total",
				Help: "Total number of symbols without a viable transition",
			},
			[]string{"machine", "state", "symbol"},
		),
		Resets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_resets_total",
				Help: "Total number of cursor resets",
			},
			[]string{"machine"},
		),
	}

	var err error
	if m.Transitions, err = register(reg, m.Transitions); err != nil {
		return nil, err
	}
	if m.Rejections, err = register(reg, m.Rejections); err != nil {
		return nil, err
	}
	if m.Resets, err = register(reg, m.Resets); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// Hooks returns lifecycle hooks that increment the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(e.Machine, e.FromName, string(e.Symbol), e.ToName).Inc()
		},
		OnReject: func(e *domain.RejectEvent) {
			m.Rejections.WithLabelValues(e.Machine, e.StateName, string(e.Symbol)).Inc()
		},
		OnReset: func(e *domain.ResetEvent) {
			m.Resets.WithLabelValues(e.Machine).Inc()
		},
	}
}
