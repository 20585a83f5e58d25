package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventBus(t *testing.T) {
	t.Parallel()

	t.Run("delivers published events in order", func(t *testing.T) {
		t.Parallel()
		bus := NewEventBus()

		bus.Publish("first", 1)
		bus.Publish("second", 2)

		event := <-bus.SubscribeCh()
		require.Equal(t, "first", event.Event)
		require.Equal(t, 1, event.Data)

		event = <-bus.SubscribeCh()
		require.Equal(t, "second", event.Event)
	})

	t.Run("publish never blocks on a full buffer", func(t *testing.T) {
		t.Parallel()
		bus := NewEventBus()

		for i := 0; i < 200; i++ {
			bus.Publish("noisy", i)
		}
		// buffer holds 100, the rest were dropped and we got here
		require.Len(t, bus.events, 100)
	})
}
