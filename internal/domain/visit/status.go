package visit

import "github.com/foodiesbnb/foodiesbnb-api/internal/httperr"

// ===============================
// Visit Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

// Actor identifies who is attempting a transition.
type Actor string

const (
	ActorFoodie     Actor = "foodie"
	ActorRestaurant Actor = "restaurant"
)

type transition struct {
	From  Status
	To    Status
	Actor Actor
}

// The full lifecycle: pending is the only non-terminal state. The foodie
// who created the visit may cancel it; the owning restaurant may confirm
// or reject it.
var allowed = map[transition]bool{
	{StatusPending, StatusCancelled, ActorFoodie}:     true,
	{StatusPending, StatusConfirmed, ActorRestaurant}: true,
	{StatusPending, StatusRejected, ActorRestaurant}:  true,
}

func InitialStatus() Status {
	return StatusPending
}

func IsTerminal(s Status) bool {
	return s == StatusConfirmed || s == StatusCancelled || s == StatusRejected
}

// CanTransition validates a status change for the given actor. Anything
// out of a terminal state, and any move not in the table, is rejected.
func CanTransition(from, to Status, actor Actor) error {
	if allowed[transition{from, to, actor}] {
		return nil
	}
	return httperr.ErrConflict("invalid_transition",
		"visit is "+string(from)+" and cannot become "+string(to))
}
