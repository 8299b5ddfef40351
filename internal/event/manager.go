// internal/event/manager.go
package event

import (
	"sort"
	"sync"

	"github.com/mirelk/undoglow/internal/logger"
)

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed (prevents further processing).
type Handler func(e Event) bool

type subscription struct {
	priority int
	seq      int // registration order, stable tie-break
	handler  Handler
}

// Manager handles event subscriptions and synchronous dispatching.
// Handlers for a type run in descending priority order; equal priorities
// run in registration order.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]subscription
	nextSeq  int
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]subscription),
	}
}

// Subscribe adds a handler at the default priority.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.SubscribeWithPriority(eventType, PriorityDefault, handler)
}

// SubscribeWithPriority adds a handler that runs before all handlers of
// lower priority for the same event type.
func (m *Manager) SubscribeWithPriority(eventType Type, priority int, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := append(m.handlers[eventType], subscription{
		priority: priority,
		seq:      m.nextSeq,
		handler:  handler,
	})
	m.nextSeq++
	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].priority != subs[j].priority {
			return subs[i].priority > subs[j].priority
		}
		return subs[i].seq < subs[j].seq
	})
	m.handlers[eventType] = subs
	logger.Debugf("Event Manager: Handler subscribed to type %v (priority %d)", eventType, priority)
}

// Dispatch sends an event to all registered handlers for its type, in
// priority order, synchronously on the calling goroutine. A handler that
// returns true consumes the event and stops propagation.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	subs := m.handlers[eventType]
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	m.mu.RUnlock()

	if len(subsCopy) == 0 {
		return
	}

	for _, sub := range subsCopy {
		if sub.handler(event) {
			break
		}
	}
}
