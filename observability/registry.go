package observability

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// registry maps config-facing names ("slog", "noop", ...) to observers so a
// scenario file can pick its trace sink by name.
var registry = struct {
	sync.RWMutex
	byName map[string]Observer
}{
	byName: map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	},
}

// GetObserver resolves name against the registry. "noop" and "slog" are
// always present; the latter writes to slog.Default until replaced.
func GetObserver(name string) (Observer, error) {
	registry.RLock()
	defer registry.RUnlock()

	if obs, ok := registry.byName[name]; ok {
		return obs, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownObserver, name)
}

// RegisterObserver binds name to observer, replacing any earlier binding.
func RegisterObserver(name string, observer Observer) {
	registry.Lock()
	defer registry.Unlock()

	registry.byName[name] = observer
}

// ObserverNames lists the registered names in sorted order.
func ObserverNames() []string {
	registry.RLock()
	defer registry.RUnlock()

	return slices.Sorted(maps.Keys(registry.byName))
}
