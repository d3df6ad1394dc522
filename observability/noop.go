package observability

import "context"

// NoOpObserver drops every event. Use it when a Context should run silently.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}
