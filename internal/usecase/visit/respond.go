package visit

import (
	"context"
	"strings"
	"time"

	"github.com/foodiesbnb/foodiesbnb-api/internal/directory"
	domain "github.com/foodiesbnb/foodiesbnb-api/internal/domain/visit"
	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

// RespondVisit is the restaurant-side decision on a pending visit:
// confirm or reject. Ownership is resolved by matching the visit's
// restaurant to a record owned by the acting user, or by the configured
// legacy demo account.
type RespondVisit struct {
	repo           domain.Repository
	directory      *directory.Directory
	bus            *events.Bus
	demoOwnerEmail string
}

func NewRespondVisit(
	repo domain.Repository,
	dir *directory.Directory,
	bus *events.Bus,
	demoOwnerEmail string,
) *RespondVisit {
	return &RespondVisit{
		repo:           repo,
		directory:      dir,
		bus:            bus,
		demoOwnerEmail: demoOwnerEmail,
	}
}

func (uc *RespondVisit) Confirm(ctx context.Context, actor *models.User, visitID string) (*models.Visit, error) {
	return uc.respond(ctx, actor, visitID, domain.Confirm)
}

func (uc *RespondVisit) Reject(ctx context.Context, actor *models.User, visitID string) (*models.Visit, error) {
	return uc.respond(ctx, actor, visitID, domain.Reject)
}

func (uc *RespondVisit) respond(
	ctx context.Context,
	actor *models.User,
	visitID string,
	action func(*models.Visit, time.Time) error,
) (*models.Visit, error) {

	v, err := uc.repo.GetVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, httperr.ErrNotFound("visit_not_found", "visit does not exist")
	}

	owns, err := uc.ownsRestaurant(ctx, actor, v.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, httperr.ErrAuth("not_restaurant_owner", "only the restaurant can respond to this visit")
	}

	// The transition itself runs under the repository lock; a racing
	// cancel cannot land between the status guard and the write-back.
	v, err = uc.repo.MutateVisit(ctx, visitID, func(v *models.Visit) error {
		return action(v, time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TopicVisitScheduled)

	return v, nil
}

func (uc *RespondVisit) ownsRestaurant(ctx context.Context, actor *models.User, restaurantID string) (bool, error) {
	if uc.demoOwnerEmail != "" && strings.EqualFold(actor.Email, uc.demoOwnerEmail) {
		return true, nil
	}

	restaurant, err := uc.directory.ByID(ctx, restaurantID)
	if err != nil {
		return false, err
	}
	return restaurant != nil && restaurant.OwnerID != "" && restaurant.OwnerID == actor.ID, nil
}
