// Package favorites is the per-user set of bookmarked restaurant ids.
package favorites

import (
	"context"

	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
)

// Repository mutations are atomic: the membership check and the write
// happen inside one locked cycle, and the bool reports whether the set
// actually changed.
type Repository interface {
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	AddFavorite(ctx context.Context, userID, restaurantID string) (bool, error)
	RemoveFavorite(ctx context.Context, userID, restaurantID string) (bool, error)
}

type Ledger struct {
	repo Repository
	bus  *events.Bus
}

func NewLedger(repo Repository, bus *events.Bus) *Ledger {
	return &Ledger{repo: repo, bus: bus}
}

// Add bookmarks a restaurant. Adding an id that is already present is a
// successful no-op and emits no signal.
func (l *Ledger) Add(ctx context.Context, userID, restaurantID string) error {
	changed, err := l.repo.AddFavorite(ctx, userID, restaurantID)
	if err != nil {
		return err
	}
	if changed {
		l.bus.Publish(events.TopicFavoritesChanged)
	}
	return nil
}

// Remove drops a bookmark. Removing an absent id is a successful no-op.
func (l *Ledger) Remove(ctx context.Context, userID, restaurantID string) error {
	changed, err := l.repo.RemoveFavorite(ctx, userID, restaurantID)
	if err != nil {
		return err
	}
	if changed {
		l.bus.Publish(events.TopicFavoritesChanged)
	}
	return nil
}

func (l *Ledger) List(ctx context.Context, userID string) ([]string, error) {
	return l.repo.ListFavorites(ctx, userID)
}

func (l *Ledger) Contains(ctx context.Context, userID, restaurantID string) (bool, error) {
	ids, err := l.repo.ListFavorites(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == restaurantID {
			return true, nil
		}
	}
	return false, nil
}
