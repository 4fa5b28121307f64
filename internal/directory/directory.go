// Package directory merges the fixed seed catalog with owner-authored
// restaurant records into one addressable, field-normalized view.
package directory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

type Repository interface {
	OwnedRestaurants(ctx context.Context) (map[string]models.Restaurant, error)

	// MutateOwned runs fn on the owner map and writes it back atomically.
	MutateOwned(ctx context.Context, fn func(owned map[string]models.Restaurant) error) error

	Draft(ctx context.Context, ownerID string) (*models.Restaurant, error)
	SaveDraft(ctx context.Context, ownerID string, draft models.Restaurant) error
}

type Directory struct {
	repo Repository
	bus  *events.Bus
}

func New(repo Repository, bus *events.Bus) *Directory {
	return &Directory{repo: repo, bus: bus}
}

// GetAll returns seed entries followed by owner-authored entries, all
// normalized. Owner entries are ordered by creation time so the merge is
// deterministic.
func (d *Directory) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	owned, err := d.repo.OwnedRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Restaurant, 0, len(seedCatalog)+len(owned))
	for _, r := range seedCatalog {
		out = append(out, normalize(r))
	}

	ownedList := make([]models.Restaurant, 0, len(owned))
	for _, r := range owned {
		ownedList = append(ownedList, normalize(r))
	}
	sort.Slice(ownedList, func(i, j int) bool {
		if ownedList[i].CreatedAt.Equal(ownedList[j].CreatedAt) {
			return ownedList[i].ID < ownedList[j].ID
		}
		return ownedList[i].CreatedAt.Before(ownedList[j].CreatedAt)
	})

	return append(out, ownedList...), nil
}

// ByID resolves one directory entry, normalized, or nil when unknown.
func (d *Directory) ByID(ctx context.Context, id string) (*models.Restaurant, error) {
	all, err := d.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// OwnedBy returns the owner-authored record of one restaurant user, or nil.
func (d *Directory) OwnedBy(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	owned, err := d.repo.OwnedRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	if r, ok := owned[ownerID]; ok {
		norm := normalize(r)
		return &norm, nil
	}
	return nil, nil
}

// Upsert publishes an owner's restaurant record. A restaurant user owns at
// most one record: a second save overwrites the first in place, keeping its
// original id and creation time. The submitted profile is also saved back
// as the owner's draft, mirroring the editor flow.
func (d *Directory) Upsert(ctx context.Context, data models.Restaurant, ownerID, ownerEmail string) (*models.Restaurant, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, httperr.ErrValidation("missing_restaurant_name", "restaurant name is required")
	}
	for _, item := range data.Menu {
		if strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
			return nil, httperr.ErrValidation("invalid_menu_item", "menu items need a name and a positive price")
		}
	}
	if data.Tables < 0 {
		return nil, httperr.ErrValidation("invalid_tables", "table count cannot be negative")
	}

	now := time.Now().UTC()
	record := data
	record.OwnerID = ownerID
	record.OwnerEmail = ownerEmail
	record.UpdatedAt = now

	err := d.repo.MutateOwned(ctx, func(owned map[string]models.Restaurant) error {
		if existing, ok := owned[ownerID]; ok {
			record.ID = existing.ID
			record.CreatedAt = existing.CreatedAt
		} else {
			record.ID = uuid.NewString()
			record.CreatedAt = now
		}

		// Menu items added without ids get one here.
		for i := range record.Menu {
			if record.Menu[i].ID == "" {
				record.Menu[i].ID = uuid.NewString()
			}
		}

		owned[ownerID] = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := d.repo.SaveDraft(ctx, ownerID, record); err != nil {
		return nil, err
	}

	d.bus.Publish(events.TopicRestaurantsUpdated)

	norm := normalize(record)
	return &norm, nil
}

// Draft returns the owner's in-progress profile, falling back to the
// published record when no separate draft exists.
func (d *Directory) Draft(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	draft, err := d.repo.Draft(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if draft != nil {
		norm := normalize(*draft)
		return &norm, nil
	}
	return d.OwnedBy(ctx, ownerID)
}

func (d *Directory) SaveDraft(ctx context.Context, ownerID string, draft models.Restaurant) error {
	return d.repo.SaveDraft(ctx, ownerID, draft)
}

type Query struct {
	Text    string
	Zone    string
	Cuisine string
}

// Filter applies the query filters AND-combined. Empty or "all" filters
// are no-ops. Entries missing a name or cuisine are excluded regardless.
func (d *Directory) Filter(ctx context.Context, q Query) ([]models.Restaurant, error) {
	all, err := d.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))
	zone := strings.ToLower(strings.TrimSpace(q.Zone))
	cuisine := strings.ToLower(strings.TrimSpace(q.Cuisine))

	out := make([]models.Restaurant, 0, len(all))
	for _, r := range all {
		if r.Name == "" || r.Cuisine == "" {
			continue
		}

		name := strings.ToLower(r.Name)
		cui := strings.ToLower(r.Cuisine)

		if text != "" && !strings.Contains(name, text) && !strings.Contains(cui, text) {
			continue
		}
		if zone != "" && zone != "all" && !strings.Contains(strings.ToLower(r.Zone), zone) {
			continue
		}
		if cuisine != "" && cuisine != "all" && !strings.Contains(cui, cuisine) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// normalize cross-fills location fields and defaults the optional ones so
// every reader sees a fully-populated record.
func normalize(r models.Restaurant) models.Restaurant {
	if r.Location == "" {
		if r.Address != "" {
			r.Location = r.Address
		} else {
			r.Location = r.Zone
		}
	}
	if r.Zone == "" {
		r.Zone = r.Location
	}
	if r.Address == "" {
		r.Address = r.Location
	}

	if len(r.Gallery) == 0 && r.Image != "" {
		r.Gallery = []string{r.Image}
	}
	if r.Gallery == nil {
		r.Gallery = []string{}
	}
	if r.Menu == nil {
		r.Menu = []models.MenuItem{}
	}
	if r.Benefits == nil {
		r.Benefits = []string{}
	}
	if len(r.AvailableSlots) == 0 {
		r.AvailableSlots = append([]string(nil), defaultSlots...)
	}
	if r.AcceptsReservations == nil {
		t := true
		r.AcceptsReservations = &t
	}
	return r
}
