package events

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("proj-1")
	defer sub.Close()

	for i := 0; i < 5; i++ {
		bus.Publish("proj-1", i)
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, i, <-sub.Events())
	}
	assert.Equal(t, int64(0), sub.Lost())
}

func TestBusIsolatesProjects(t *testing.T) {
	bus := NewBus()
	subA := bus.Subscribe("proj-a")
	subB := bus.Subscribe("proj-b")
	defer subA.Close()
	defer subB.Close()

	bus.Publish("proj-a", "for-a")

	assert.Equal(t, "for-a", <-subA.Events())
	select {
	case v := <-subB.Events():
		t.Fatalf("unexpected delivery to proj-b subscriber: %v", v)
	default:
	}
}

func TestBusFanOut(t *testing.T) {
	bus := NewBus()
	sub1 := bus.Subscribe("proj-1")
	sub2 := bus.Subscribe("proj-1")
	defer sub1.Close()
	defer sub2.Close()

	require.Equal(t, 2, bus.SubscriberCount("proj-1"))

	bus.Publish("proj-1", "hello")

	assert.Equal(t, "hello", <-sub1.Events())
	assert.Equal(t, "hello", <-sub2.Events())
}

func TestBusDropsOldestWhenFull(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("proj-1")
	defer sub.Close()

	total := subscriberBuffer + 10
	for i := 0; i < total; i++ {
		bus.Publish("proj-1", i)
	}

	// The newest subscriberBuffer events survive; the oldest 10 are lost.
	assert.Equal(t, int64(10), sub.Lost())
	first := <-sub.Events()
	assert.Equal(t, 10, first)

	last := first
	for i := 1; i < subscriberBuffer; i++ {
		last = (<-sub.Events()).(int)
	}
	assert.Equal(t, total-1, last)
}

func TestBusPrunesClosedSubscribers(t *testing.T) {
	bus := NewBus()
	sub1 := bus.Subscribe("proj-1")
	sub2 := bus.Subscribe("proj-1")

	sub1.Close()
	require.Equal(t, 1, bus.SubscriberCount("proj-1"))

	// Publish drops the closed subscription and still reaches the live one.
	bus.Publish("proj-1", "still-here")
	assert.Equal(t, "still-here", <-sub2.Events())

	sub2.Close()
	bus.Publish("proj-1", "nobody-home")
	assert.Equal(t, 0, bus.SubscriberCount("proj-1"))
}

func TestSubscriptionCloseIsIdempotent(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("proj-1")

	sub.Close()
	assert.NotPanics(t, func() { sub.Close() })

	_, ok := <-sub.Events()
	assert.False(t, ok)
}

func TestBusSlowSubscriberDoesNotBlockOthers(t *testing.T) {
	bus := NewBus()
	slow := bus.Subscribe("proj-1")
	fast := bus.Subscribe("proj-1")
	defer slow.Close()

	// Overflow the slow subscriber while draining the fast one. Even if
	// the drainer lags and loses events itself, what it sees must stay
	// in publish order.
	done := make(chan struct{})
	go func() {
		defer close(done)
		prev := -1
		for v := range fast.Events() {
			n := v.(int)
			if n <= prev {
				panic(fmt.Sprintf("out of order: got %d after %d", n, prev))
			}
			prev = n
		}
	}()

	for i := 0; i < subscriberBuffer*3; i++ {
		bus.Publish("proj-1", i)
	}
	fast.Close()
	<-done

	assert.Greater(t, slow.Lost(), int64(0))
}

func TestBusCloseDetachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe("proj-1")
	b := bus.Subscribe("proj-2")

	bus.Close()

	_, open := <-a.Events()
	assert.False(t, open)
	_, open = <-b.Events()
	assert.False(t, open)
	assert.Equal(t, 0, bus.SubscriberCount("proj-1"))

	// Closing an already detached subscription stays a no-op.
	a.Close()
	bus.Publish("proj-1", 1)
}
