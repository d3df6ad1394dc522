package state

import (
	"fmt"
	"strings"
)

// State is one mode of a Context. The Context calls SetContext whenever the
// state becomes active, and forwards Request1/Request2 to Handle1/Handle2.
// A handler may call Context().TransitionTo to replace itself.
type State interface {
	Name() string
	SetContext(c *Context)
	Handle1()
	Handle2()
}

// Base holds the back-reference to the owning Context. Embed it in a State
// implementation to get SetContext for free.
type Base struct {
	context *Context
}

func (b *Base) SetContext(c *Context) {
	b.context = c
}

// transitionTo moves the owning Context to next. A state that was never
// activated has no Context to move, so the call does nothing.
func (b *Base) transitionTo(next State) {
	if b.context == nil {
		return
	}
	b.context.TransitionTo(next)
}

// Context returns the Context this state was activated on, or nil if it has
// never been activated.
func (b *Base) Context() *Context {
	return b.context
}

// Lookup returns a fresh State for a variant name. Both the short form ("A")
// and the type name ("ConcreteStateA") are accepted, case-insensitively.
func Lookup(name string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a", "concretestatea":
		return &ConcreteStateA{}, nil
	case "b", "concretestateb":
		return &ConcreteStateB{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
}
