package utils

// Event is one in-process notification, fanned out to live consumers such
// as the websocket hub.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type EventBus struct {
	events chan Event
}

func NewEventBus() *EventBus {
	return &EventBus{
		events: make(chan Event, 100),
	}
}

// Publish never blocks; when the buffer is full the event is dropped,
// consumers only carry live counters, not durable state.
func (eb *EventBus) Publish(event string, data interface{}) {
	e := Event{Event: event, Data: data}
	select {
	case eb.events <- e:
	default:
	}
}

func (eb *EventBus) SubscribeCh() <-chan Event {
	return eb.events
}
