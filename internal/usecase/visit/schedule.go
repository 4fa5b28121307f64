package visit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/foodiesbnb/foodiesbnb-api/internal/directory"
	domain "github.com/foodiesbnb/foodiesbnb-api/internal/domain/visit"
	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

type ScheduleVisit struct {
	repo      domain.Repository
	directory *directory.Directory
	bus       *events.Bus
}

func NewScheduleVisit(
	repo domain.Repository,
	dir *directory.Directory,
	bus *events.Bus,
) *ScheduleVisit {
	return &ScheduleVisit{
		repo:      repo,
		directory: dir,
		bus:       bus,
	}
}

type ScheduleInput struct {
	RestaurantID    string
	VisitDate       string
	VisitTime       string
	PartySize       int
	SpecialRequests string
}

// Execute books a visit for the acting foodie. The restaurant's name,
// image and location are copied onto the visit so later profile edits do
// not rewrite the booking history.
func (uc *ScheduleVisit) Execute(
	ctx context.Context,
	customer *models.User,
	in ScheduleInput,
) (*models.Visit, error) {

	if in.PartySize < 1 {
		return nil, httperr.ErrValidation("invalid_party_size", "party size must be at least 1")
	}
	if in.VisitDate == "" || in.VisitTime == "" {
		return nil, httperr.ErrValidation("missing_visit_slot", "visit date and time are required")
	}

	restaurant, err := uc.directory.ByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, httperr.ErrNotFound("restaurant_not_found", "restaurant does not exist")
	}

	v := models.Visit{
		ID:              uuid.NewString(),
		RestaurantID:    restaurant.ID,
		CustomerID:      customer.ID,
		CustomerName:    customer.FullName,
		VisitDate:       in.VisitDate,
		VisitTime:       in.VisitTime,
		PartySize:       in.PartySize,
		SpecialRequests: in.SpecialRequests,
		Status:          string(domain.InitialStatus()),

		RestaurantName:     restaurant.Name,
		RestaurantImage:    restaurant.Image,
		RestaurantLocation: restaurant.Location,

		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.AppendVisit(ctx, &v); err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TopicVisitScheduled)

	return &v, nil
}
