// Package store is the persistence port: named JSON collections behind a
// small read/write interface so managers never touch a concrete backend.
package store

import "context"

// Collection keys. Every manager reads and writes whole collections; the
// store itself knows nothing about their shape.
const (
	KeyUsers          = "users"
	KeyCurrentSession = "currentSession"
	KeyRestaurants    = "restaurants"
	KeyVisits         = "visits"
	KeyFavorites      = "favorites"
)

// DraftKey is the per-owner scratch record for in-progress profile edits.
func DraftKey(ownerID string) string {
	return "restaurant_" + ownerID
}

// Store reads and writes one JSON value per key.
//
// Read decodes the stored payload into v. A missing key or a payload that
// fails to decode leaves v untouched and returns nil: callers always see
// an empty collection rather than an error they cannot act on.
type Store interface {
	Read(ctx context.Context, key string, v any) error
	Write(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}
