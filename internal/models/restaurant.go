package models

import "time"

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// Restaurant is a directory entry. Seed-catalog entries have no OwnerID;
// owner-authored entries carry the id and email of the restaurant user
// that published them.
type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`

	// Location, Zone and Address are cross-filled at read time; at least
	// one is expected to be populated on any published record.
	Location string `json:"location,omitempty"`
	Zone     string `json:"zone,omitempty"`
	Address  string `json:"address,omitempty"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`

	Image       string   `json:"image,omitempty"`
	Gallery     []string `json:"gallery"`
	Description string   `json:"description,omitempty"`
	PriceRange  string   `json:"priceRange,omitempty"`
	OpenHours   string   `json:"openHours,omitempty"`
	Phone       string   `json:"phone,omitempty"`

	Benefits       []string `json:"benefits"`
	AvailableSlots []string `json:"availableSlots"`
	Tables         int      `json:"tables,omitempty"`

	// AcceptsReservations defaults to true; only an explicit false stored
	// on the record turns it off, so the field is a pointer.
	AcceptsReservations *bool `json:"acceptsReservations,omitempty"`

	Menu []MenuItem `json:"menu"`

	OwnerID    string `json:"ownerId,omitempty"`
	OwnerEmail string `json:"ownerEmail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
