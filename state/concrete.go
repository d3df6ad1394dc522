package state

// ConcreteStateA moves the Context to ConcreteStateB on Handle1 and stays
// put on Handle2. Before activation its handlers do nothing.
type ConcreteStateA struct {
	Base
}

func (s *ConcreteStateA) Name() string { return "ConcreteStateA" }

func (s *ConcreteStateA) Handle1() {
	s.context.Trace(EventHandle, map[string]any{"state": s.Name(), "request": Request1})
	next := &ConcreteStateB{}
	s.context.Trace(EventTransitionRequest, map[string]any{"state": s.Name(), "target": next.Name()})
	s.transitionTo(next)
}

func (s *ConcreteStateA) Handle2() {
	s.context.Trace(EventHandle, map[string]any{"state": s.Name(), "request": Request2})
}

// ConcreteStateB stays put on Handle1 and moves the Context back to
// ConcreteStateA on Handle2.
type ConcreteStateB struct {
	Base
}

func (s *ConcreteStateB) Name() string { return "ConcreteStateB" }

func (s *ConcreteStateB) Handle1() {
	s.context.Trace(EventHandle, map[string]any{"state": s.Name(), "request": Request1})
}

func (s *ConcreteStateB) Handle2() {
	s.context.Trace(EventHandle, map[string]any{"state": s.Name(), "request": Request2})
	next := &ConcreteStateA{}
	s.context.Trace(EventTransitionRequest, map[string]any{"state": s.Name(), "target": next.Name()})
	s.transitionTo(next)
}
