package state

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tailored-agentic-units/statepattern/observability"
)

const metricsNamespace = "statepattern"

// noState labels the source of the initial activation.
const noState = "none"

// MetricsObserver counts transitions and requests as Prometheus counters.
// It is both an Observer and a prometheus.Collector, so register it once
// and pass it to WithObserver (or a MultiObserver).
type MetricsObserver struct {
	transitions *prometheus.CounterVec
	requests    *prometheus.CounterVec
}

// NewMetricsObserver creates an unregistered MetricsObserver.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "transitions_total",
				Help:      "Number of state transitions performed by a Context.",
			},
			[]string{"from", "to"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Number of requests delegated to a state.",
			},
			[]string{"request", "state"},
		),
	}
}

func (m *MetricsObserver) OnEvent(ctx context.Context, event observability.Event) {
	switch event.Type {
	case EventTransition:
		from := stringValue(event.Data, "from")
		if from == "" {
			from = noState
		}
		m.transitions.WithLabelValues(from, stringValue(event.Data, "to")).Inc()
	case EventRequest:
		m.requests.WithLabelValues(stringValue(event.Data, "request"), stringValue(event.Data, "state")).Inc()
	}
}

func (m *MetricsObserver) Describe(ch chan<- *prometheus.Desc) {
	m.transitions.Describe(ch)
	m.requests.Describe(ch)
}

func (m *MetricsObserver) Collect(ch chan<- prometheus.Metric) {
	m.transitions.Collect(ch)
	m.requests.Collect(ch)
}

func stringValue(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}
