package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish("emp-1", Event{EmployeeID: "emp-1", Event: "notification", Data: "hello"})

	select {
	case event := <-ch:
		assert.Equal(t, "notification", event.Event)
		assert.Equal(t, "hello", event.Data)
	default:
		t.Fatal("expected event on subscriber channel")
	}
}

func TestHub_PublishIsScopedToEmployee(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish("emp-2", Event{EmployeeID: "emp-2", Event: "notification"})

	select {
	case <-ch:
		t.Fatal("received event meant for another employee")
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("emp-1")
	require.Equal(t, 1, hub.SubscriberCount("emp-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("emp-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_FullChannelDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	// Channel capacity is 10; the extra publishes are dropped, not blocked
	for i := 0; i < 20; i++ {
		hub.Publish("emp-1", Event{EmployeeID: "emp-1", Event: "notification", Data: i})
	}

	assert.Equal(t, 10, len(ch))
}
