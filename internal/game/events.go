package game

import "gridsnake/internal/sim"

// EventHandler reacts to one simulation event on the frame loop's thread.
type EventHandler func(sim.Event)

// EventBus fans simulation events out to host-side listeners such as audio
// and logging. Handlers run synchronously in subscription order.
type EventBus struct {
	handlers map[sim.EventKind][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[sim.EventKind][]EventHandler)}
}

// Subscribe registers fn for every kind listed.
func (eb *EventBus) Subscribe(fn EventHandler, kinds ...sim.EventKind) {
	for _, k := range kinds {
		eb.handlers[k] = append(eb.handlers[k], fn)
	}
}

// Publish delivers each event of a frame in order.
func (eb *EventBus) Publish(events []sim.Event) {
	for _, e := range events {
		for _, fn := range eb.handlers[e.Kind] {
			fn(e)
		}
	}
}
