package service

import (
	"sort"
	"strings"
	"sync"
)

const (
	appointmentKeyPrefix = "appointment:"
	createGuardKey       = "view:create"
)

func appointmentKey(id string) string {
	return appointmentKeyPrefix + id
}

// keyedGuard lets one operation at a time hold a key. A second caller fails
// fast instead of waiting.
type keyedGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func newKeyedGuard() *keyedGuard {
	return &keyedGuard{held: make(map[string]struct{})}
}

func (g *keyedGuard) acquire(key string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, false
	}
	g.held[key] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.held, key)
		g.mu.Unlock()
	}, true
}

func (g *keyedGuard) holds(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.held[key]
	return ok
}

// appointmentIDs lists the appointments with a mutation in flight, sorted.
func (g *keyedGuard) appointmentIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, len(g.held))
	for k := range g.held {
		if id, ok := strings.CutPrefix(k, appointmentKeyPrefix); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
