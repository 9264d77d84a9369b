// Package lifecycle carries application startup events between the
// components that produce them (the HTTP handler, the server) and the ones
// that react to them (the blueprint hook, the health service).
package lifecycle

import (
	"context"
	"fmt"
	"sync"
)

// Event names a lifecycle stage.
type Event string

const (
	// EventRouterBefore is emitted once the router is built and before it
	// starts serving. Its payload is the chi.Router to bind routes on.
	EventRouterBefore Event = "router:before"

	// EventReady is emitted after every router:before listener succeeded.
	// It carries no payload.
	EventReady Event = "ready"
)

// Listener handles one emitted event.
type Listener func(ctx context.Context, payload any) error

// Emitter is a synchronous publish-subscribe bus. Listeners run in
// registration order; the first error stops the emission.
type Emitter struct {
	mu        sync.RWMutex
	listeners map[Event][]Listener
}

func NewEmitter() *Emitter {
	return &Emitter{
		listeners: make(map[Event][]Listener),
	}
}

// On registers l for event.
func (e *Emitter) On(event Event, l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners[event] = append(e.listeners[event], l)
}

// Emit calls every listener of event with payload.
func (e *Emitter) Emit(ctx context.Context, event Event, payload any) error {
	e.mu.RLock()
	listeners := append([]Listener(nil), e.listeners[event]...)
	e.mu.RUnlock()

	for _, l := range listeners {
		if err := l(ctx, payload); err != nil {
			return fmt.Errorf("%s listener: %w", event, err)
		}
	}

	return nil
}

// Listeners returns the number of listeners registered for event.
func (e *Emitter) Listeners(event Event) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.listeners[event])
}
