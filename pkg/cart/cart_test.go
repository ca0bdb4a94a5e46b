package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"madhurfashion.in/storefront/pkg/models"
)

// memoryRepository keeps snapshots per session and counts saves so tests can
// check that every mutation persists.
type memoryRepository struct {
	snapshots map[string][]models.CartLineItem
	saves     int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{snapshots: make(map[string][]models.CartLineItem)}
}

func (r *memoryRepository) Load(_ context.Context, sessionID string) ([]models.CartLineItem, error) {
	snapshot := r.snapshots[sessionID]
	items := make([]models.CartLineItem, len(snapshot))
	copy(items, snapshot)
	return items, nil
}

func (r *memoryRepository) Save(_ context.Context, sessionID string, items []models.CartLineItem) error {
	snapshot := make([]models.CartLineItem, len(items))
	copy(snapshot, items)
	r.snapshots[sessionID] = snapshot
	r.saves++
	return nil
}

func (r *memoryRepository) Clear(_ context.Context, sessionID string) error {
	delete(r.snapshots, sessionID)
	return nil
}

func kurta(id string, price float64) models.CartLineItem {
	return models.CartLineItem{ProductID: id, Name: "Silk Kurta " + id, Price: price}
}

func TestAddMergesByIdentityKey(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemoryRepository())

	items, err := store.Add(ctx, "s1", kurta("A", 100), "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = store.Add(ctx, "s1", kurta("A", 100), "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, 200.0, Total(items))
	require.Equal(t, 2, ItemCount(items))
}

func TestAddDifferentSizeColorKeepsSeparateEntries(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemoryRepository())

	_, err := store.Add(ctx, "s1", kurta("A", 100), "M", "red")
	require.NoError(t, err)
	items, err := store.Add(ctx, "s1", kurta("A", 100), "L", "red")
	require.NoError(t, err)

	require.Len(t, items, 2)
	keys := map[string]bool{}
	for _, item := range items {
		require.False(t, keys[item.IdentityKey()], "duplicate identity key %s", item.IdentityKey())
		keys[item.IdentityKey()] = true
	}
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemoryRepository())

	_, err := store.Add(ctx, "s1", kurta("A", 100), "M", "")
	require.NoError(t, err)

	items, err := store.SetQuantity(ctx, "s1", "A", 5, "M", "")
	require.NoError(t, err)
	require.Equal(t, 5, items[0].Quantity)
	require.Equal(t, 500.0, Total(items))

	// zero removes the entry
	items, err = store.SetQuantity(ctx, "s1", "A", 0, "M", "")
	require.NoError(t, err)
	require.Empty(t, items)

	// unknown key is a no-op, never creates an entry
	items, err = store.SetQuantity(ctx, "s1", "ghost", 3, "", "")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestRemoveIsNoOpWhenAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemoryRepository())

	_, err := store.Add(ctx, "s1", kurta("A", 100), "", "")
	require.NoError(t, err)

	items, err := store.Remove(ctx, "s1", "A", "M", "") // size differs
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = store.Remove(ctx, "s1", "A", "", "")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestTotalMatchesSumOverAnyOperationSequence(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemoryRepository())

	_, _ = store.Add(ctx, "s1", kurta("A", 100), "", "")
	_, _ = store.Add(ctx, "s1", kurta("B", 250.5), "M", "blue")
	_, _ = store.Add(ctx, "s1", kurta("A", 100), "", "")
	_, _ = store.SetQuantity(ctx, "s1", "B", 3, "M", "blue")
	_, _ = store.Remove(ctx, "s1", "missing", "", "")
	items, err := store.Items(ctx, "s1")
	require.NoError(t, err)

	var want float64
	seen := map[string]bool{}
	for _, item := range items {
		require.GreaterOrEqual(t, item.Quantity, 1)
		require.False(t, seen[item.IdentityKey()])
		seen[item.IdentityKey()] = true
		want += item.Price * float64(item.Quantity)
	}
	require.Equal(t, want, Total(items))
	require.Equal(t, 200+3*250.5, Total(items))
}

func TestEveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	store := NewStore(repo)

	_, _ = store.Add(ctx, "s1", kurta("A", 100), "", "")
	_, _ = store.SetQuantity(ctx, "s1", "A", 4, "", "")
	_, _ = store.Remove(ctx, "s1", "A", "", "")
	require.Equal(t, 3, repo.saves)

	// a second store hydrates from the same repository
	_, _ = store.Add(ctx, "s1", kurta("A", 100), "", "")
	rehydrated, err := NewStore(repo).Items(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, rehydrated, 1)
}

func TestClearEmptiesTheCollection(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemoryRepository())

	_, _ = store.Add(ctx, "s1", kurta("A", 100), "", "")
	require.NoError(t, store.Clear(ctx, "s1"))

	items, err := store.Items(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, items)
}
