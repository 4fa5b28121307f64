package visit

import (
	"time"

	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(v *models.Visit, now time.Time) error {
	if err := CanTransition(Status(v.Status), StatusCancelled, ActorFoodie); err != nil {
		return err
	}

	v.Status = string(StatusCancelled)
	v.UpdatedAt = &now
	return nil
}

func Confirm(v *models.Visit, now time.Time) error {
	if err := CanTransition(Status(v.Status), StatusConfirmed, ActorRestaurant); err != nil {
		return err
	}

	v.Status = string(StatusConfirmed)
	v.UpdatedAt = &now
	return nil
}

func Reject(v *models.Visit, now time.Time) error {
	if err := CanTransition(Status(v.Status), StatusRejected, ActorRestaurant); err != nil {
		return err
	}

	v.Status = string(StatusRejected)
	v.UpdatedAt = &now
	return nil
}
