// Package events provides a small synchronous publish/subscribe channel.
//
// One Emitter belongs to one owner (for example a pagination control) and is
// created together with it. Handlers run on the emitting goroutine, in the
// order they were registered. Events emitted while nobody listens are dropped.
package events

import (
	"sync"
)

// Handler receives the payload passed to Emit.
type Handler func(payload any)

// Subscription identifies a registered handler so it can be removed with Off.
type Subscription struct {
	event string
	id    uint64
}

type registration struct {
	id      uint64
	handler Handler
}

// Emitter dispatches named events to registered handlers.
type Emitter struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]registration
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[string][]registration),
	}
}

// On registers handler for event.
func (e *Emitter) On(event string, handler Handler) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	e.handlers[event] = append(e.handlers[event], registration{id: e.nextID, handler: handler})

	return Subscription{event: event, id: e.nextID}
}

// Off removes a handler registered with On. Unknown subscriptions are ignored.
func (e *Emitter) Off(sub Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()

	regs := e.handlers[sub.event]
	for i, reg := range regs {
		if reg.id == sub.id {
			e.handlers[sub.event] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}

	if len(e.handlers[sub.event]) == 0 {
		delete(e.handlers, sub.event)
	}
}

// Emit calls every handler registered for event with payload and reports
// whether at least one handler ran.
func (e *Emitter) Emit(event string, payload any) bool {
	// Snapshot so handlers may subscribe or unsubscribe while being called
	e.mu.RLock()
	regs := make([]registration, len(e.handlers[event]))
	copy(regs, e.handlers[event])
	e.mu.RUnlock()

	for _, reg := range regs {
		reg.handler(payload)
	}

	return len(regs) > 0
}

// Count returns the number of handlers registered for event.
func (e *Emitter) Count(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[event])
}
