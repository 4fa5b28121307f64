package repository

import (
	"context"
	"sync"

	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

// FavoriteStoreRepository partitions favorites by user id: the favorites
// collection holds a map of user id to restaurant-id list. A legacy flat
// list fails to decode and reads as empty, same as any corrupt payload.
// The membership check and the write-back share one lock, so concurrent
// adds of the same id cannot both see it absent.
type FavoriteStoreRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewFavoriteStoreRepository(s store.Store) *FavoriteStoreRepository {
	return &FavoriteStoreRepository{store: s}
}

func (r *FavoriteStoreRepository) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return all[userID], nil
}

// AddFavorite inserts the id and reports whether the set changed.
func (r *FavoriteStoreRepository) AddFavorite(ctx context.Context, userID, restaurantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}

	for _, id := range all[userID] {
		if id == restaurantID {
			return false, nil
		}
	}

	all[userID] = append(all[userID], restaurantID)
	if err := r.store.Write(ctx, store.KeyFavorites, all); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveFavorite drops the id and reports whether the set changed.
func (r *FavoriteStoreRepository) RemoveFavorite(ctx context.Context, userID, restaurantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}

	ids := all[userID]
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != restaurantID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return false, nil
	}

	all[userID] = kept
	if err := r.store.Write(ctx, store.KeyFavorites, all); err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteStoreRepository) readAll(ctx context.Context) (map[string][]string, error) {
	all := make(map[string][]string)
	if err := r.store.Read(ctx, store.KeyFavorites, &all); err != nil {
		return nil, err
	}
	return all, nil
}
