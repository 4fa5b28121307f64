package visit

import (
	"context"

	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

type Repository interface {
	ListVisits(ctx context.Context) ([]models.Visit, error)

	// GetVisit returns (nil, nil) when the id is unknown.
	GetVisit(ctx context.Context, id string) (*models.Visit, error)

	AppendVisit(ctx context.Context, v *models.Visit) error

	// MutateVisit applies fn to the stored record atomically: the read,
	// fn, and the write-back happen under one lock. An unknown id fails
	// with visit_not_found; an error from fn aborts the write.
	MutateVisit(ctx context.Context, id string, fn func(*models.Visit) error) (*models.Visit, error)
}
