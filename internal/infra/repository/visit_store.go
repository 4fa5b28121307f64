package repository

import (
	"context"
	"sync"

	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

// VisitStoreRepository implements the visit domain repository over the
// store port. Visits are never physically deleted. Mutations hold one
// mutex across the whole read-modify-write cycle.
type VisitStoreRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewVisitStoreRepository(s store.Store) *VisitStoreRepository {
	return &VisitStoreRepository{store: s}
}

func (r *VisitStoreRepository) ListVisits(ctx context.Context) ([]models.Visit, error) {
	var visits []models.Visit
	if err := r.store.Read(ctx, store.KeyVisits, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *VisitStoreRepository) GetVisit(ctx context.Context, id string) (*models.Visit, error) {
	visits, err := r.ListVisits(ctx)
	if err != nil {
		return nil, err
	}

	for i := range visits {
		if visits[i].ID == id {
			return &visits[i], nil
		}
	}
	return nil, nil
}

func (r *VisitStoreRepository) AppendVisit(ctx context.Context, v *models.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	visits, err := r.ListVisits(ctx)
	if err != nil {
		return err
	}
	visits = append(visits, *v)
	return r.store.Write(ctx, store.KeyVisits, visits)
}

// MutateVisit applies fn to the stored record under the collection lock
// and persists the result. Status guards inside fn therefore see the
// latest stored state: two racing transitions cannot both read pending.
func (r *VisitStoreRepository) MutateVisit(ctx context.Context, id string, fn func(*models.Visit) error) (*models.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	visits, err := r.ListVisits(ctx)
	if err != nil {
		return nil, err
	}

	for i := range visits {
		if visits[i].ID == id {
			if err := fn(&visits[i]); err != nil {
				return nil, err
			}
			if err := r.store.Write(ctx, store.KeyVisits, visits); err != nil {
				return nil, err
			}
			v := visits[i]
			return &v, nil
		}
	}
	return nil, httperr.ErrNotFound("visit_not_found", "visit does not exist")
}
