package utils

import (
	"sync"
	"time"
)

// Event is a domain notification (thread posted, like toggled, ...) published
// by services after a mutation is acknowledged.
type Event struct {
	Name string      `json:"event"`
	At   time.Time   `json:"at"`
	Data interface{} `json:"data"`
}

type Handler func(event Event)

// EventBus is an in-process pub/sub. Publish never blocks: when the channel
// buffer is full the event is dropped, mutations must not wait on observers.
type EventBus struct {
	subscribers map[string][]Handler
	events      chan Event
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]Handler),
		events:      make(chan Event, 256),
	}
}

func (eb *EventBus) Publish(name string, data interface{}) {
	e := Event{Name: name, At: time.Now().UTC(), Data: data}

	eb.mu.RLock()
	handlers := eb.subscribers[name]
	eb.mu.RUnlock()
	for _, h := range handlers {
		h(e)
	}

	select {
	case eb.events <- e:
	default:
	}
}

func (eb *EventBus) Subscribe(name string, handler Handler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers[name] = append(eb.subscribers[name], handler)
}

func (eb *EventBus) SubscribeCh() <-chan Event {
	return eb.events
}
