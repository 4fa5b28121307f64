package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

// UserStoreRepository keeps the user list and the current-session record
// in the store. Every mutation is a whole-collection read-modify-write
// cycle held under one mutex, so concurrent requests cannot interleave
// between the read and the write.
type UserStoreRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewUserStoreRepository(s store.Store) *UserStoreRepository {
	return &UserStoreRepository{store: s}
}

func (r *UserStoreRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.store.Read(ctx, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserStoreRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for i := range users {
		if strings.ToLower(users[i].Email) == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *UserStoreRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// CreateUser appends the user, re-checking email uniqueness inside the
// locked cycle: two concurrent registrations for the same address cannot
// both pass the caller's earlier duplicate check.
func (r *UserStoreRepository) CreateUser(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}

	email := strings.ToLower(u.Email)
	for i := range users {
		if strings.ToLower(users[i].Email) == email {
			return httperr.ErrConflict("duplicate_email", "email is already registered")
		}
	}

	users = append(users, *u)
	return r.store.Write(ctx, store.KeyUsers, users)
}

// MutateUser applies fn to the stored record under the collection lock
// and persists the result. fn returning an error aborts the write.
func (r *UserStoreRepository) MutateUser(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			if err := fn(&users[i]); err != nil {
				return nil, err
			}
			if err := r.store.Write(ctx, store.KeyUsers, users); err != nil {
				return nil, err
			}
			u := users[i]
			return &u, nil
		}
	}
	return nil, httperr.ErrNotFound("user_not_found", "user does not exist")
}

// Session returns the redacted current user, or nil when logged out.
func (r *UserStoreRepository) Session(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := r.store.Read(ctx, store.KeyCurrentSession, &u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

func (r *UserStoreRepository) PutSession(ctx context.Context, u *models.User) error {
	redacted := u.Redacted()
	return r.store.Write(ctx, store.KeyCurrentSession, redacted)
}

func (r *UserStoreRepository) ClearSession(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyCurrentSession)
}
