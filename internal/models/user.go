package models

import "time"

type UserType string

const (
	UserTypeFoodie     UserType = "foodie"
	UserTypeRestaurant UserType = "restaurant"
)

func (t UserType) Valid() bool {
	return t == UserTypeFoodie || t == UserTypeRestaurant
}

// RestaurantInfo carries the extra profile fields of restaurant-type users.
type RestaurantInfo struct {
	Description  string   `json:"description,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`
	Capacity     int      `json:"capacity,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty"`
}

type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	UserType UserType `json:"userType"`

	// PasswordHash is persisted with the record but must never leave the
	// identity package; callers receive Redacted copies.
	PasswordHash string `json:"passwordHash,omitempty"`

	Phone          string          `json:"phone,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	Preferences    []string        `json:"preferences,omitempty"`
	RestaurantInfo *RestaurantInfo `json:"restaurantInfo,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Redacted returns a copy safe to hand to callers and to the session record.
func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}
