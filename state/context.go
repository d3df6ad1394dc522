// Package state implements the State pattern: a Context delegates its
// requests to an interchangeable State, and states may replace themselves
// by transitioning the Context to another State.
//
//	ctx, err := state.New(&state.ConcreteStateA{})
//	ctx.Request1() // ConcreteStateA -> ConcreteStateB
//	ctx.Request2() // ConcreteStateB -> ConcreteStateA
//
// Every transition and every handled request is reported as an
// observability.Event to the Context's observer, which defaults to the
// "slog" observer.
//
// A Context is not safe for concurrent use. Callers that share one across
// goroutines must serialize Request1, Request2 and TransitionTo themselves.
package state

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/statepattern/observability"
)

// Transition records one replacement of the active state. From is empty for
// the initial activation performed by New.
type Transition struct {
	Sequence int
	From     string
	To       string
	At       time.Time
}

// Option configures a Context before the initial state is activated.
type Option func(*Context)

// WithObserver overrides the default SlogObserver. A nil observer is
// replaced by NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(c *Context) {
		if o == nil {
			o = observability.NoOpObserver{}
		}
		c.observer = o
	}
}

// WithID overrides the generated context identifier.
func WithID(id string) Option {
	return func(c *Context) { c.id = id }
}

// Context owns exactly one active State and forwards requests to it.
type Context struct {
	id       string
	state    State
	observer observability.Observer
	history  []Transition
}

// New creates a Context and activates initial through TransitionTo, so the
// initial activation is reported like any other transition.
func New(initial State, opts ...Option) (*Context, error) {
	if isNil(initial) {
		return nil, fmt.Errorf("failed to create context: %w", ErrNilState)
	}

	c := &Context{
		id:       uuid.Must(uuid.NewV7()).String(),
		observer: observability.NewSlogObserver(slog.Default()),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Trace(EventContextCreate, nil)
	c.TransitionTo(initial)
	return c, nil
}

// ID returns the context identifier attached to every emitted event.
func (c *Context) ID() string {
	return c.id
}

// State returns the active state.
func (c *Context) State() State {
	return c.state
}

// History returns a copy of the transitions performed so far, oldest first.
func (c *Context) History() []Transition {
	return slices.Clone(c.history)
}

// TransitionTo replaces the active state with next and hands next a
// back-reference to c. It panics if next is nil, including a typed nil
// pointer, and the active state is left unchanged in that case.
func (c *Context) TransitionTo(next State) {
	if isNil(next) {
		panic(fmt.Sprintf("state: TransitionTo called with %v", ErrNilState))
	}

	var from string
	if c.state != nil {
		from = c.state.Name()
	}

	to := next.Name()
	next.SetContext(c)
	c.state = next

	t := Transition{
		Sequence: len(c.history) + 1,
		From:     from,
		To:       to,
		At:       time.Now(),
	}
	c.history = append(c.history, t)

	c.emit(observability.Event{
		Type:      EventTransition,
		Level:     observability.LevelInfo,
		Timestamp: t.At,
		Data: map[string]any{
			"from":     t.From,
			"to":       t.To,
			"sequence": t.Sequence,
		},
	})
}

// Request1 delegates to the active state's Handle1.
func (c *Context) Request1() {
	c.request(Request1)
	c.state.Handle1()
}

// Request2 delegates to the active state's Handle2.
func (c *Context) Request2() {
	c.request(Request2)
	c.state.Handle2()
}

// Trace reports an info-level event on behalf of the active state. The
// context identifier is added to data. Calling Trace on a nil Context is a
// no-op.
func (c *Context) Trace(t observability.EventType, data map[string]any) {
	if c == nil {
		return
	}

	level := observability.LevelInfo
	if t == EventContextCreate {
		level = observability.LevelVerbose
	}

	c.emit(observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Data:      maps.Clone(data),
	})
}

func (c *Context) request(name string) {
	c.emit(observability.Event{
		Type:      EventRequest,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Data: map[string]any{
			"request": name,
			"state":   c.state.Name(),
		},
	})
}

func (c *Context) emit(event observability.Event) {
	if event.Data == nil {
		event.Data = make(map[string]any, 1)
	}
	event.Data["context_id"] = c.id
	event.Source = "state.Context"

	c.observer.OnEvent(context.Background(), event)
}

func isNil(s State) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
