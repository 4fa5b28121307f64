package favorites_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
	"github.com/foodiesbnb/foodiesbnb-api/internal/favorites"
	infraRepo "github.com/foodiesbnb/foodiesbnb-api/internal/infra/repository"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

func newLedger() (*favorites.Ledger, *events.Bus) {
	bus := events.NewBus()
	repo := infraRepo.NewFavoriteStoreRepository(store.NewMemory())
	return favorites.NewLedger(repo, bus), bus
}

func TestAdd_IsIdempotent(t *testing.T) {
	ledger, _ := newLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, "u1", "1"))
	require.NoError(t, ledger.Add(ctx, "u1", "1"))

	ids, err := ledger.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)
}

// Concurrent adds of the same id must not all see it absent: the set
// ends up with exactly one entry.
func TestAdd_ConcurrentSameID(t *testing.T) {
	ledger, _ := newLedger()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, ledger.Add(ctx, "u1", "1"))
		}()
	}
	wg.Wait()

	ids, err := ledger.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	ledger, _ := newLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Remove(ctx, "u1", "99"))

	require.NoError(t, ledger.Add(ctx, "u1", "1"))
	require.NoError(t, ledger.Add(ctx, "u1", "2"))
	require.NoError(t, ledger.Remove(ctx, "u1", "1"))

	ids, err := ledger.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids)
}

func TestContains(t *testing.T) {
	ledger, _ := newLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, "u1", "3"))

	ok, err := ledger.Contains(ctx, "u1", "3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ledger.Contains(ctx, "u1", "4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavorites_ArePerUser(t *testing.T) {
	ledger, _ := newLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, "u1", "1"))

	ids, err := ledger.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMutationsEmitChangeNotification(t *testing.T) {
	ledger, bus := newLedger()
	ctx := context.Background()

	var notified int
	bus.Subscribe(events.TopicFavoritesChanged, func() { notified++ })

	require.NoError(t, ledger.Add(ctx, "u1", "1"))
	require.NoError(t, ledger.Add(ctx, "u1", "1")) // no state change, no signal
	require.NoError(t, ledger.Remove(ctx, "u1", "1"))
	require.NoError(t, ledger.Remove(ctx, "u1", "1"))

	assert.Equal(t, 2, notified)
}
