package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := events.NewBus()

	var got int
	bus.Subscribe(events.TopicFavoritesChanged, func() { got++ })
	bus.Subscribe(events.TopicFavoritesChanged, func() { got++ })

	bus.Publish(events.TopicFavoritesChanged)
	assert.Equal(t, 2, got)
}

func TestBus_TopicsAreIsolated(t *testing.T) {
	bus := events.NewBus()

	var favorites, visits int
	bus.Subscribe(events.TopicFavoritesChanged, func() { favorites++ })
	bus.Subscribe(events.TopicVisitScheduled, func() { visits++ })

	bus.Publish(events.TopicVisitScheduled)

	assert.Equal(t, 0, favorites)
	assert.Equal(t, 1, visits)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()

	var got int
	unsub := bus.Subscribe(events.TopicRestaurantsUpdated, func() { got++ })

	bus.Publish(events.TopicRestaurantsUpdated)
	unsub()
	bus.Publish(events.TopicRestaurantsUpdated)

	assert.Equal(t, 1, got)
}

func TestBus_PublishWithoutListenersIsNoop(t *testing.T) {
	bus := events.NewBus()
	assert.NotPanics(t, func() { bus.Publish(events.TopicVisitScheduled) })
}
