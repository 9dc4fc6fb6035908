package storage

import (
	"context"
	"testing"
	"time"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// insertBehindCache inserts an expense row through the raw handle,
// bypassing the write gate and the cache invalidation, so tests can tell
// cached reads from fresh ones.
func insertBehindCache(t *testing.T, store *Store, owner, label string) {
	t.Helper()
	_, err := store.db.Exec(
		`INSERT INTO expenses(owner, item_name, amount, category, date) VALUES (?, ?, ?, ?, ?)`,
		owner, label, 1000.0, "Khác", "2024-01-01")
	require.NoError(t, err)
}

func TestReadsWithinTTLAreMemoized(t *testing.T) {
	store := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.AddExpense(ctx, "alice", "Coffee", decimal.NewFromInt(50000), "Ăn uống", mustDate(t, "2024-01-01")))

	first, err := store.ViewExpenses(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A row slipped in behind the cache is invisible within the window.
	insertBehindCache(t, store, "alice", "Hidden")

	second, err := store.ViewExpenses(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTTLExpiryRecomputes(t *testing.T) {
	store := newTestStore(t, 50*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.AddExpense(ctx, "alice", "Coffee", decimal.NewFromInt(50000), "Ăn uống", mustDate(t, "2024-01-01")))

	first, err := store.ViewExpenses(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, first, 1)

	insertBehindCache(t, store, "alice", "Hidden")
	time.Sleep(80 * time.Millisecond)

	second, err := store.ViewExpenses(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestWriteInvalidatesWholeNamespace(t *testing.T) {
	store := newTestStore(t, time.Minute)
	ctx := context.Background()
	date := mustDate(t, "2024-01-01")

	require.NoError(t, store.AddExpense(ctx, "alice", "Coffee", decimal.NewFromInt(50000), "Ăn uống", date))
	require.NoError(t, store.AddExpense(ctx, "bob", "Taxi", decimal.NewFromInt(80000), "Di chuyển", date))

	// Warm both users' cached views.
	_, err := store.ViewExpenses(ctx, "alice")
	require.NoError(t, err)
	_, err = store.ViewExpenses(ctx, "bob")
	require.NoError(t, err)

	// A write by bob evicts alice's entry too: the invalidation is
	// deliberately coarse.
	require.NoError(t, store.AddExpense(ctx, "bob", "Bus", decimal.NewFromInt(7000), "Di chuyển", date))

	insertBehindCache(t, store, "alice", "Fresh")
	rows, err := store.ViewExpenses(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, rows, 2, "alice's read after bob's write must be fresh")
}

func TestDeleteInvalidatesCache(t *testing.T) {
	store := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.AddExpense(ctx, "alice", "Coffee", decimal.NewFromInt(50000), "Ăn uống", mustDate(t, "2024-01-01")))

	rows, err := store.ViewExpenses(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	txns, err := store.ListWithIDs(ctx, model.TableExpenses, "alice")
	require.NoError(t, err)
	_, err = store.DeleteRecord(ctx, model.TableExpenses, txns[0].ID, "alice")
	require.NoError(t, err)

	rows, err = store.ViewExpenses(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCacheUnit(t *testing.T) {
	cache := newReadCache(time.Minute)
	key := cacheKey("view_expenses", "alice")

	_, ok := cache.get(key)
	assert.False(t, ok)

	rows := []model.Row{{Label: "Coffee", Category: "Ăn uống", Date: "2024-01-01", Amount: decimal.NewFromInt(50000)}}
	cache.set(key, rows)

	got, ok := cache.get(key)
	assert.True(t, ok)
	assert.Equal(t, rows, got)

	cache.invalidateAll()
	_, ok = cache.get(key)
	assert.False(t, ok)
}
