package events

import (
	"sync"
	"sync/atomic"
)

// subscriberBuffer is the per-subscriber channel capacity. A full buffer
// drops the oldest event rather than blocking the publisher.
const subscriberBuffer = 64

// Bus is an in-process fan-out keyed by project id. Delivery is
// best-effort: slow subscribers lose their oldest events, closed
// subscribers are pruned on the next publish.
type Bus struct {
	mu     sync.Mutex
	topics map[string][]*Subscription
}

// Subscription is one subscriber's view of a project topic.
type Subscription struct {
	projectID string
	ch        chan any
	lost      atomic.Int64
	closed    bool
	bus       *Bus
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[string][]*Subscription)}
}

// Subscribe registers interest in a project's events.
func (b *Bus) Subscribe(projectID string) *Subscription {
	sub := &Subscription{
		projectID: projectID,
		ch:        make(chan any, subscriberBuffer),
		bus:       b,
	}

	b.mu.Lock()
	b.topics[projectID] = append(b.topics[projectID], sub)
	b.mu.Unlock()

	return sub
}

// Publish delivers a payload to every live subscriber of the project.
// Per-subscriber publish order is preserved; a full buffer drops the
// oldest buffered event and counts the loss.
func (b *Bus) Publish(projectID string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[projectID]
	if len(subs) == 0 {
		return
	}

	live := subs[:0]
	for _, sub := range subs {
		if sub.closed {
			continue
		}
		live = append(live, sub)

		select {
		case sub.ch <- payload:
		default:
			// Buffer full: make room by discarding the oldest event.
			select {
			case <-sub.ch:
				sub.lost.Add(1)
			default:
			}
			select {
			case sub.ch <- payload:
			default:
				sub.lost.Add(1)
			}
		}
	}

	if len(live) == 0 {
		delete(b.topics, projectID)
	} else {
		b.topics[projectID] = live
	}
}

// Close detaches every subscriber. Used at shutdown; publishing to a
// closed bus is a no-op because no live subscribers remain.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subs := range b.topics {
		for _, sub := range subs {
			if !sub.closed {
				sub.closed = true
				close(sub.ch)
			}
		}
	}
	b.topics = make(map[string][]*Subscription)
}

// SubscriberCount returns the number of live subscribers for a project.
func (b *Bus) SubscriberCount(projectID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, sub := range b.topics[projectID] {
		if !sub.closed {
			n++
		}
	}
	return n
}

// Events returns the receive channel. The channel is closed by Close.
func (s *Subscription) Events() <-chan any {
	return s.ch
}

// Lost reports how many events this subscriber missed to buffer overflow.
func (s *Subscription) Lost() int64 {
	return s.lost.Load()
}

// Close detaches the subscription and closes its channel. Idempotent.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
