package repository

import (
	"context"
	"sync"

	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

// RestaurantStoreRepository holds owner-authored restaurant records as a
// map keyed by owner id, giving upsert an O(1) lookup, plus the per-owner
// draft blobs used by the profile editor. Map mutations run under one
// lock spanning the read-modify-write cycle.
type RestaurantStoreRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewRestaurantStoreRepository(s store.Store) *RestaurantStoreRepository {
	return &RestaurantStoreRepository{store: s}
}

func (r *RestaurantStoreRepository) OwnedRestaurants(ctx context.Context) (map[string]models.Restaurant, error) {
	owned := make(map[string]models.Restaurant)
	if err := r.store.Read(ctx, store.KeyRestaurants, &owned); err != nil {
		return nil, err
	}
	return owned, nil
}

// MutateOwned applies fn to the owner map under the collection lock and
// persists the result. An error from fn aborts the write.
func (r *RestaurantStoreRepository) MutateOwned(ctx context.Context, fn func(owned map[string]models.Restaurant) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned, err := r.OwnedRestaurants(ctx)
	if err != nil {
		return err
	}
	if err := fn(owned); err != nil {
		return err
	}
	return r.store.Write(ctx, store.KeyRestaurants, owned)
}

// Draft returns the owner's in-progress profile, or nil when none exists.
func (r *RestaurantStoreRepository) Draft(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	var draft models.Restaurant
	if err := r.store.Read(ctx, store.DraftKey(ownerID), &draft); err != nil {
		return nil, err
	}
	if draft.Name == "" && draft.OwnerID == "" {
		return nil, nil
	}
	return &draft, nil
}

func (r *RestaurantStoreRepository) SaveDraft(ctx context.Context, ownerID string, draft models.Restaurant) error {
	return r.store.Write(ctx, store.DraftKey(ownerID), draft)
}

func (r *RestaurantStoreRepository) DeleteDraft(ctx context.Context, ownerID string) error {
	return r.store.Delete(ctx, store.DraftKey(ownerID))
}
