// Package db defines the remote-database client this service will migrate
// to once persistence leaves the local store. Nothing in the running
// service calls it; it pins the target schema.
package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/foodiesbnb/foodiesbnb-api/internal/config"
)

type RemoteRestaurant struct {
	ID          string    `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name;not null"`
	Cuisine     string    `gorm:"column:cuisine"`
	Location    string    `gorm:"column:location"`
	Rating      float64   `gorm:"column:rating"`
	ReviewCount int       `gorm:"column:review_count"`
	Image       string    `gorm:"column:image"`
	Description string    `gorm:"column:description"`
	PriceRange  string    `gorm:"column:price_range"`
	OpenHours   string    `gorm:"column:open_hours"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (RemoteRestaurant) TableName() string { return "restaurants" }

type RemoteVisit struct {
	ID              string    `gorm:"primaryKey;column:id"`
	UserID          string    `gorm:"column:user_id"`
	RestaurantID    string    `gorm:"column:restaurant_id"`
	VisitDate       string    `gorm:"column:visit_date"`
	VisitTime       string    `gorm:"column:visit_time"`
	PartySize       int       `gorm:"column:party_size"`
	SpecialRequests string    `gorm:"column:special_requests"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (RemoteVisit) TableName() string { return "visits" }

type RemoteUser struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	UserType  string    `gorm:"column:user_type"`
	FullName  string    `gorm:"column:full_name"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (RemoteUser) TableName() string { return "users" }

func Open(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
}

func AutoMigrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&RemoteRestaurant{},
		&RemoteVisit{},
		&RemoteUser{},
	)
}
