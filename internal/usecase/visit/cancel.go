package visit

import (
	"context"
	"time"

	domain "github.com/foodiesbnb/foodiesbnb-api/internal/domain/visit"
	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

type CancelVisit struct {
	repo domain.Repository
	bus  *events.Bus
}

func NewCancelVisit(repo domain.Repository, bus *events.Bus) *CancelVisit {
	return &CancelVisit{repo: repo, bus: bus}
}

// Execute cancels a pending visit. Only the visit's creator may cancel.
// The ownership check and the transition run inside the repository's
// locked cycle, so a racing confirm or reject cannot slip in between.
func (uc *CancelVisit) Execute(
	ctx context.Context,
	customerID string,
	visitID string,
) (*models.Visit, error) {

	v, err := uc.repo.MutateVisit(ctx, visitID, func(v *models.Visit) error {
		if v.CustomerID != customerID {
			return httperr.ErrAuth("not_visit_owner", "only the visit's creator can cancel it")
		}
		return domain.Cancel(v, time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TopicVisitScheduled)

	return v, nil
}
