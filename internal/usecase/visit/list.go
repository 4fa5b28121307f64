package visit

import (
	"context"

	"github.com/foodiesbnb/foodiesbnb-api/internal/directory"
	domain "github.com/foodiesbnb/foodiesbnb-api/internal/domain/visit"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

// ListVisits serves the derived, read-only views over the visit ledger.
type ListVisits struct {
	repo      domain.Repository
	directory *directory.Directory
}

func NewListVisits(repo domain.Repository, dir *directory.Directory) *ListVisits {
	return &ListVisits{repo: repo, directory: dir}
}

func (uc *ListVisits) ForUser(ctx context.Context, userID string) ([]models.Visit, error) {
	visits, err := uc.repo.ListVisits(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Visit, 0, len(visits))
	for _, v := range visits {
		if v.CustomerID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

// ForRestaurantOwner lists the visits booked against the owner's
// restaurant. Owners without a published record see an empty list.
func (uc *ListVisits) ForRestaurantOwner(ctx context.Context, ownerID string) ([]models.Visit, error) {
	restaurant, err := uc.directory.OwnedBy(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return []models.Visit{}, nil
	}

	visits, err := uc.repo.ListVisits(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Visit, 0, len(visits))
	for _, v := range visits {
		if v.RestaurantID == restaurant.ID {
			out = append(out, v)
		}
	}
	return out, nil
}
