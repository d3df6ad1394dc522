package state_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tailored-agentic-units/statepattern/observability"
	"github.com/tailored-agentic-units/statepattern/state"
)

func TestMetricsObserver(t *testing.T) {
	metrics := state.NewMetricsObserver()
	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(metrics)

	c, err := state.New(&state.ConcreteStateA{}, state.WithObserver(metrics))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.Request1()
	c.Request1()
	c.Request2()

	expected := `
# HELP statepattern_transitions_total Number of state transitions performed by a Context.
# TYPE statepattern_transitions_total counter
statepattern_transitions_total{from="ConcreteStateA",to="ConcreteStateB"} 1
statepattern_transitions_total{from="ConcreteStateB",to="ConcreteStateA"} 1
statepattern_transitions_total{from="none",to="ConcreteStateA"} 1
# HELP statepattern_requests_total Number of requests delegated to a state.
# TYPE statepattern_requests_total counter
statepattern_requests_total{request="request1",state="ConcreteStateA"} 1
statepattern_requests_total{request="request1",state="ConcreteStateB"} 1
statepattern_requests_total{request="request2",state="ConcreteStateB"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"statepattern_transitions_total", "statepattern_requests_total"); err != nil {
		t.Error(err)
	}
}

func TestMetricsObserver_WithRecorder(t *testing.T) {
	metrics := state.NewMetricsObserver()
	rec := observability.NewRecorder()

	c, err := state.New(&state.ConcreteStateB{},
		state.WithObserver(observability.NewMultiObserver(metrics, rec)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.Request2()

	if got := testutil.CollectAndCount(metrics, "statepattern_transitions_total"); got != 2 {
		t.Errorf("got %d transition series, want 2", got)
	}
	if got := len(rec.Filter(state.EventTransition)); got != 2 {
		t.Errorf("recorder saw %d transitions, want 2", got)
	}
}

func TestMetricsObserver_IgnoresOtherEvents(t *testing.T) {
	metrics := state.NewMetricsObserver()

	metrics.OnEvent(t.Context(), observability.Event{Type: state.EventHandle})
	metrics.OnEvent(t.Context(), observability.Event{Type: "unrelated"})

	if got := testutil.CollectAndCount(metrics); got != 0 {
		t.Errorf("got %d series, want 0", got)
	}
}
