package observability

import (
	"context"
	"slices"
)

// MultiObserver forwards each event to every member, in the order given.
type MultiObserver struct {
	members []Observer
}

// NewMultiObserver combines observers. Nil entries are skipped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	members := slices.DeleteFunc(slices.Clone(observers), func(o Observer) bool {
		return o == nil
	})
	return &MultiObserver{members: members}
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, o := range m.members {
		o.OnEvent(ctx, event)
	}
}

// Len reports how many observers receive events.
func (m *MultiObserver) Len() int {
	return len(m.members)
}
