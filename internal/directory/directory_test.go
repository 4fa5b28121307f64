package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiesbnb/foodiesbnb-api/internal/directory"
	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	infraRepo "github.com/foodiesbnb/foodiesbnb-api/internal/infra/repository"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

func newDirectory() (*directory.Directory, *events.Bus) {
	bus := events.NewBus()
	repo := infraRepo.NewRestaurantStoreRepository(store.NewMemory())
	return directory.New(repo, bus), bus
}

func TestGetAll_SeedCatalogIsNormalized(t *testing.T) {
	dir, _ := newDirectory()

	all, err := dir.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 6)

	for _, r := range all {
		assert.NotEmpty(t, r.Location, r.Name)
		assert.NotEmpty(t, r.Zone, r.Name)
		assert.NotEmpty(t, r.Address, r.Name)
		assert.GreaterOrEqual(t, len(r.Gallery), 1, r.Name)
		assert.NotEmpty(t, r.AvailableSlots, r.Name)
		require.NotNil(t, r.AcceptsReservations, r.Name)
		assert.True(t, *r.AcceptsReservations, r.Name)
	}
}

func TestUpsert_OneRecordPerOwner(t *testing.T) {
	dir, _ := newDirectory()
	ctx := context.Background()

	first, err := dir.Upsert(ctx, models.Restaurant{
		Name:    "Test Grill",
		Cuisine: "Parrilla",
		Zone:    "Centro",
	}, "u1", "owner@test.com")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// A second save overwrites in place, keeping id and creation time.
	second, err := dir.Upsert(ctx, models.Restaurant{
		Name:    "Test Grill Renamed",
		Cuisine: "Parrilla",
		Zone:    "Centro",
	}, "u1", "owner@test.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))

	all, err := dir.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestUpsert_AppearsInDirectoryNormalized(t *testing.T) {
	dir, _ := newDirectory()
	ctx := context.Background()

	_, err := dir.Upsert(ctx, models.Restaurant{
		Name:    "Test Grill",
		Cuisine: "Parrilla",
		Zone:    "Centro",
		Image:   "grill.jpg",
	}, "u1", "owner@test.com")
	require.NoError(t, err)

	all, err := dir.GetAll(ctx)
	require.NoError(t, err)

	var matches []models.Restaurant
	for _, r := range all {
		if r.Name == "Test Grill" {
			matches = append(matches, r)
		}
	}
	require.Len(t, matches, 1)
	got := matches[0]
	require.NotNil(t, got.AcceptsReservations)
	assert.True(t, *got.AcceptsReservations)
	assert.GreaterOrEqual(t, len(got.Gallery), 1)
	assert.Equal(t, "u1", got.OwnerID)
}

func TestUpsert_Validation(t *testing.T) {
	dir, _ := newDirectory()
	ctx := context.Background()

	_, err := dir.Upsert(ctx, models.Restaurant{Name: "  "}, "u1", "o@test.com")
	assert.True(t, httperr.IsBusiness(err, "missing_restaurant_name"))

	_, err = dir.Upsert(ctx, models.Restaurant{
		Name: "Grill",
		Menu: []models.MenuItem{{Name: "Taco", Price: 0}},
	}, "u1", "o@test.com")
	assert.True(t, httperr.IsBusiness(err, "invalid_menu_item"))

	_, err = dir.Upsert(ctx, models.Restaurant{Name: "Grill", Tables: -1}, "u1", "o@test.com")
	assert.True(t, httperr.IsBusiness(err, "invalid_tables"))

	// Nothing was published.
	all, err := dir.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestUpsert_AssignsMenuItemIDs(t *testing.T) {
	dir, _ := newDirectory()

	saved, err := dir.Upsert(context.Background(), models.Restaurant{
		Name: "Grill",
		Menu: []models.MenuItem{
			{Name: "Taco", Price: 8.5},
			{ID: "m1", Name: "Burrito", Price: 10},
		},
	}, "u1", "o@test.com")
	require.NoError(t, err)

	assert.NotEmpty(t, saved.Menu[0].ID)
	assert.Equal(t, "m1", saved.Menu[1].ID)
}

func TestUpsert_EmitsRestaurantsUpdated(t *testing.T) {
	dir, bus := newDirectory()

	var notified int
	bus.Subscribe(events.TopicRestaurantsUpdated, func() { notified++ })

	_, err := dir.Upsert(context.Background(), models.Restaurant{Name: "Grill"}, "u1", "o@test.com")
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}

func TestByID(t *testing.T) {
	dir, _ := newDirectory()
	ctx := context.Background()

	r, err := dir.ByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "Sushi Sakura", r.Name)

	r, err = dir.ByID(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestFilter(t *testing.T) {
	dir, _ := newDirectory()
	ctx := context.Background()

	// Case-insensitive text search over name and cuisine.
	got, err := dir.Filter(ctx, directory.Query{Text: "sushi"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sushi Sakura", got[0].Name)

	// "all" filters are no-ops.
	got, err = dir.Filter(ctx, directory.Query{Zone: "all", Cuisine: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 6)

	got, err = dir.Filter(ctx, directory.Query{Cuisine: "japonesa"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sushi Sakura", got[0].Name)
}

func TestFilter_ExcludesIncompleteEntries(t *testing.T) {
	dir, _ := newDirectory()
	ctx := context.Background()

	// An owner record without a cuisine never matches any filter result.
	_, err := dir.Upsert(ctx, models.Restaurant{Name: "No Cuisine Yet"}, "u1", "o@test.com")
	require.NoError(t, err)

	got, err := dir.Filter(ctx, directory.Query{})
	require.NoError(t, err)
	for _, r := range got {
		assert.NotEqual(t, "No Cuisine Yet", r.Name)
	}
}

func TestDraft_FallsBackToPublishedRecord(t *testing.T) {
	dir, _ := newDirectory()
	ctx := context.Background()

	d, err := dir.Draft(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = dir.Upsert(ctx, models.Restaurant{Name: "Grill"}, "u1", "o@test.com")
	require.NoError(t, err)

	// Upsert stores the submitted profile as the draft too.
	d, err = dir.Draft(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Grill", d.Name)

	// An explicit draft wins over the published record.
	require.NoError(t, dir.SaveDraft(ctx, "u1", models.Restaurant{Name: "Grill WIP", OwnerID: "u1"}))
	d, err = dir.Draft(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Grill WIP", d.Name)
}
