package engine

import (
	"testing"
)

type pingEvent struct{ n int }

func (pingEvent) Type() EventType { return "ping" }

type pongEvent struct{}

func (pongEvent) Type() EventType { return "pong" }

func TestEmitReachesAllSubscribers(t *testing.T) {
	bus := NewEventBus()

	got := 0
	bus.Subscribe("ping", func(e Event) { got += e.(pingEvent).n })
	bus.Subscribe("ping", func(e Event) { got += e.(pingEvent).n * 10 })

	bus.Emit(pingEvent{n: 3})

	if got != 33 {
		t.Errorf("got %d, want 33", got)
	}
}

func TestEmitIgnoresOtherTypes(t *testing.T) {
	bus := NewEventBus()

	called := false
	bus.Subscribe("ping", func(Event) { called = true })

	bus.Emit(pongEvent{})

	if called {
		t.Error("pong event reached a ping handler")
	}
}

func TestEmitWithNoSubscribers(t *testing.T) {
	bus := NewEventBus()
	// Must not panic.
	bus.Emit(pingEvent{n: 1})
}
