package eventbus

import (
	"sync"
)

// EventBus is a topic based publish/subscribe fan-out for events of type T.
// Publishing never blocks: a subscriber whose queue is full misses the event.
type EventBus[T any] interface {
	Publish(topic string, message T)
	Subscribe(topic string, bufSize int, filter func(T) bool) Subscriber[T]
	// Subscribers returns the number of live subscriptions on topic
	Subscribers(topic string) int
}

type Subscriber[T any] interface {
	C() <-chan T
	Unsubscribe()
}

type eventBus[T any] struct {
	subscribers map[string]map[*subscriber[T]]func(T) bool
	mu          sync.Mutex
}

type subscriber[T any] struct {
	mu     sync.Mutex
	ch     chan T
	closed bool
}

// MatchAll is a filter accepting every event
func MatchAll[T any](T) bool {
	return true
}

// New returns an initialized EventBus.
func New[T any]() EventBus[T] {
	return &eventBus[T]{
		subscribers: make(map[string]map[*subscriber[T]]func(T) bool),
	}
}

// Publish a message to a topic (best-effort).
func (eb *eventBus[T]) Publish(topic string, message T) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for sub, filter := range eb.subscribers[topic] {
		sub.mu.Lock()
		if sub.closed {
			delete(eb.subscribers[topic], sub)
			sub.mu.Unlock()
			continue
		}

		if filter(message) {
			select {
			case sub.ch <- message:
			default:
			}
		}
		sub.mu.Unlock()
	}

	if len(eb.subscribers[topic]) == 0 {
		delete(eb.subscribers, topic)
	}
}

// Subscribe to a topic with a filter function. Returns a channel with given buffer size.
func (eb *eventBus[T]) Subscribe(topic string, bufSize int, filter func(T) bool) Subscriber[T] {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if filter == nil {
		filter = MatchAll[T]
	}

	sub := &subscriber[T]{
		ch: make(chan T, bufSize),
	}

	if _, ok := eb.subscribers[topic]; !ok {
		eb.subscribers[topic] = make(map[*subscriber[T]]func(T) bool)
	}
	eb.subscribers[topic][sub] = filter

	return sub
}

func (eb *eventBus[T]) Subscribers(topic string) int {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	n := 0
	for sub := range eb.subscribers[topic] {
		sub.mu.Lock()
		if !sub.closed {
			n++
		}
		sub.mu.Unlock()
	}
	return n
}

func (s *subscriber[T]) C() <-chan T {
	return s.ch
}

// Unsubscribe closes the channel, calling it more than once is a no-op
func (s *subscriber[T]) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	close(s.ch)
	s.closed = true
}
