// Package events is the change-notification bus. Mutating managers publish
// a named, payload-free signal after each successful write; listeners
// re-read the store, so delivery order does not matter.
package events

import "sync"

const (
	TopicFavoritesChanged   = "favoritesChanged"
	TopicVisitScheduled     = "visitScheduled"
	TopicRestaurantsUpdated = "restaurantsUpdated"
)

type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func())}
}

// Subscribe registers fn for a topic and returns its unsubscribe func.
func (b *Bus) Subscribe(topic string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish delivers the signal synchronously to every current subscriber.
func (b *Bus) Publish(topic string) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
