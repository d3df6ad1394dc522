package state

import "github.com/tailored-agentic-units/statepattern/observability"

// Event types emitted by a Context and the states it drives.
const (
	EventContextCreate     observability.EventType = "context.create"
	EventTransition        observability.EventType = "context.transition"
	EventRequest           observability.EventType = "context.request"
	EventHandle            observability.EventType = "state.handle"
	EventTransitionRequest observability.EventType = "state.transition.request"
)

// Request names carried in event data.
const (
	Request1 = "request1"
	Request2 = "request2"
)
