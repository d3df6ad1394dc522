// Package scenario replays a configured sequence of requests against a
// state.Context. It is the client side of the pattern: build a Context from
// an initial state name, call Request1/Request2 in order, report the result.
//
//	cfg := scenario.DefaultConfig()
//	result, err := scenario.Run(ctx, &cfg)
package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/tailored-agentic-units/statepattern/observability"
	"github.com/tailored-agentic-units/statepattern/state"
)

// Result holds the outcome of a Run.
type Result struct {
	ContextID   string             // Identifier of the Context that ran.
	Final       string             // Name of the active state after the last request.
	Requests    int                // Number of requests issued.
	Transitions []state.Transition // Every transition, including the initial activation.
}

// Option configures a Run after the config-driven defaults are resolved.
type Option func(*runner)

// WithObserver overrides the observer named in Config.Observer.
func WithObserver(o observability.Observer) Option {
	return func(r *runner) { r.observer = o }
}

type runner struct {
	observer observability.Observer
}

// Run builds a Context from cfg.Initial and issues cfg.Requests in order.
// The whole request list is validated before the first request is issued.
// ctx is checked between requests.
func Run(ctx context.Context, cfg *Config, opts ...Option) (*Result, error) {
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}

	if r.observer == nil {
		obs, err := observability.GetObserver(cfg.Observer)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve observer: %w", err)
		}
		r.observer = obs
	}

	initial, err := state.Lookup(cfg.Initial)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve initial state: %w", err)
	}

	calls := make([]func(*state.Context), len(cfg.Requests))
	for i, name := range cfg.Requests {
		call, err := resolveRequest(name)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		calls[i] = call
	}

	c, err := state.New(initial, state.WithObserver(r.observer))
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	result := &Result{ContextID: c.ID()}
	for _, call := range calls {
		if err := ctx.Err(); err != nil {
			result.Final = c.State().Name()
			result.Transitions = c.History()
			return result, err
		}
		call(c)
		result.Requests++
	}

	result.Final = c.State().Name()
	result.Transitions = c.History()
	return result, nil
}

func resolveRequest(name string) (func(*state.Context), error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case state.Request1, "1":
		return (*state.Context).Request1, nil
	case state.Request2, "2":
		return (*state.Context).Request2, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRequest, name)
	}
}
