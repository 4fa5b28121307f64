package models

import "time"

// Visit is a booking request tying a foodie, a restaurant, a date/time and
// a party size. The restaurant fields are a snapshot taken at creation so
// that later directory edits do not rewrite past reservations.
type Visit struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`

	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName,omitempty"`

	VisitDate       string `json:"visitDate"`
	VisitTime       string `json:"visitTime"`
	PartySize       int    `json:"partySize"`
	SpecialRequests string `json:"specialRequests,omitempty"`

	Status string `json:"status"`

	RestaurantName     string `json:"restaurantName,omitempty"`
	RestaurantImage    string `json:"restaurantImage,omitempty"`
	RestaurantLocation string `json:"restaurantLocation,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
