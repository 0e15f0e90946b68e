// Package events provides a minimal synchronous pub/sub bus. It exists so
// the planner can notify the progress engine about new goals without a
// direct import between the two.
package events

import "sync"

type Handler func(data any)

type registration struct {
	id int
	fn Handler
}

// Bus delivers events to subscribers synchronously, in registration order.
// A panicking subscriber propagates to the emitter; there is no isolation.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[string][]registration
}

func NewBus() *Bus {
	return &Bus{handlers: map[string][]registration{}}
}

// On registers a handler and returns its subscription id. Go functions are
// not comparable, so Off takes the id instead of the handler itself.
func (b *Bus) On(event string, fn Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.handlers[event] = append(b.handlers[event], registration{id: b.nextID, fn: fn})
	return b.nextID
}

func (b *Bus) Off(event string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	regs := b.handlers[event]
	for i := range regs {
		if regs[i].id == id {
			b.handlers[event] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

func (b *Bus) Emit(event string, data any) {
	b.mu.Lock()
	regs := make([]registration, len(b.handlers[event]))
	copy(regs, b.handlers[event])
	b.mu.Unlock()

	for _, r := range regs {
		r.fn(data)
	}
}
