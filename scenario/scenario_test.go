package scenario_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tailored-agentic-units/statepattern/observability"
	"github.com/tailored-agentic-units/statepattern/scenario"
	"github.com/tailored-agentic-units/statepattern/state"
)

func TestRun_Default(t *testing.T) {
	cfg := scenario.DefaultConfig()
	rec := observability.NewRecorder()

	result, err := scenario.Run(context.Background(), &cfg, scenario.WithObserver(rec))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Final != "ConcreteStateA" {
		t.Errorf("got Final %q, want ConcreteStateA", result.Final)
	}
	if result.Requests != 2 {
		t.Errorf("got Requests %d, want 2", result.Requests)
	}
	if len(result.Transitions) != 3 {
		t.Errorf("got %d transitions, want 3", len(result.Transitions))
	}
	if result.ContextID == "" {
		t.Error("ContextID is empty")
	}

	for _, e := range rec.Events() {
		if e.Data["context_id"] != result.ContextID {
			t.Fatalf("event %s carries context_id %v, want %s", e.Type, e.Data["context_id"], result.ContextID)
		}
	}
}

func TestRun_Sequences(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		requests    []string
		final       string
		transitions int
	}{
		{name: "no requests", initial: "B", requests: nil, final: "ConcreteStateB", transitions: 1},
		{name: "A stays on request2", initial: "A", requests: []string{"2", "2"}, final: "ConcreteStateA", transitions: 1},
		{name: "B stays on request1", initial: "B", requests: []string{"request1"}, final: "ConcreteStateB", transitions: 1},
		{name: "odd cycle", initial: "A", requests: []string{"1", "2", "1"}, final: "ConcreteStateB", transitions: 4},
		{name: "mixed from B", initial: "B", requests: []string{"2", "1", "1", "2"}, final: "ConcreteStateA", transitions: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &scenario.Config{Initial: tt.initial, Requests: tt.requests, Observer: "noop"}

			result, err := scenario.Run(context.Background(), cfg)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if result.Final != tt.final {
				t.Errorf("got Final %q, want %q", result.Final, tt.final)
			}
			if len(result.Transitions) != tt.transitions {
				t.Errorf("got %d transitions, want %d", len(result.Transitions), tt.transitions)
			}
			if result.Requests != len(tt.requests) {
				t.Errorf("got Requests %d, want %d", result.Requests, len(tt.requests))
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     scenario.Config
		wantErr error
	}{
		{name: "unknown initial", cfg: scenario.Config{Initial: "C", Observer: "noop"}, wantErr: state.ErrUnknownState},
		{name: "unknown request", cfg: scenario.Config{Initial: "A", Requests: []string{"1", "request3"}, Observer: "noop"}, wantErr: scenario.ErrUnknownRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := observability.NewRecorder()
			_, err := scenario.Run(context.Background(), &tt.cfg, scenario.WithObserver(rec))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
			if n := len(rec.Events()); n != 0 {
				t.Errorf("got %d events, want none before validation passes", n)
			}
		})
	}

	t.Run("unknown observer", func(t *testing.T) {
		cfg := scenario.Config{Initial: "A", Observer: "does-not-exist"}
		if _, err := scenario.Run(context.Background(), &cfg); err == nil {
			t.Error("expected error for unknown observer")
		}
	})
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &scenario.Config{Initial: "A", Requests: []string{"1", "2"}, Observer: "noop"}
	result, err := scenario.Run(ctx, cfg)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want context.Canceled", err)
	}
	if result == nil || result.Requests != 0 || result.Final != "ConcreteStateA" {
		t.Errorf("unexpected partial result: %+v", result)
	}
}

func TestRun_CancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel as soon as the first transition out of the initial state happens.
	obs := observability.ObserverFunc(func(_ context.Context, e observability.Event) {
		if e.Type == state.EventTransition && e.Data["from"] != "" {
			cancel()
		}
	})

	cfg := &scenario.Config{Initial: "A", Requests: []string{"1", "2", "1"}}
	result, err := scenario.Run(ctx, cfg, scenario.WithObserver(obs))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want context.Canceled", err)
	}
	if result.Requests != 1 || result.Final != "ConcreteStateB" {
		t.Errorf("got %d requests ending in %q, want 1 ending in ConcreteStateB", result.Requests, result.Final)
	}
}
