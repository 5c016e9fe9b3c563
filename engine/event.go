// Package engine provides the typed event bus the game's subsystems talk
// over. The map core emits and consumes events only through this bus, never
// by reaching into other subsystems directly.
package engine

// EventType names a category of event. Subscriptions key off it.
type EventType string

// Event is anything the bus can carry. Implementations are plain structs
// that report their own type.
type Event interface {
	Type() EventType
}

// EventHandler receives every event of the type it was subscribed under.
type EventHandler func(Event)

// EventBus routes emitted events to the handlers subscribed to their type.
type EventBus struct {
	subscribers map[EventType][]EventHandler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe attaches a handler to one event type. Handlers fire in
// subscription order.
func (b *EventBus) Subscribe(eventType EventType, handler EventHandler) {
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Emit delivers the event synchronously to every handler of its type.
func (b *EventBus) Emit(event Event) {
	for _, handler := range b.subscribers[event.Type()] {
		handler(event)
	}
}
