package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiumstore/storefront/internal/catalog"
	"github.com/premiumstore/storefront/internal/storage"
)

func product(id int, price string) catalog.Product {
	return catalog.Product{ID: id, Title: "p", Price: price, InStock: true}
}

func TestAdd_MergesByProductID(t *testing.T) {
	s := NewStore(storage.NewMemory())

	s.Add(product(1, "$10.00"))
	items := s.Add(product(1, "$10.00"))

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.False(t, items[0].AddedAt.IsZero())
}

func TestAdd_DistinctProductsGetOwnLines(t *testing.T) {
	s := NewStore(storage.NewMemory())

	s.Add(product(1, "$10.00"))
	items := s.Add(product(2, "$20.00"))

	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore(storage.NewMemory())
	s.Add(product(1, "$10.00"))
	s.Add(product(2, "$20.00"))

	items := s.UpdateQuantity(1, 5)
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)

	// zero or negative removes the line entirely
	items = s.UpdateQuantity(1, 0)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)

	items = s.UpdateQuantity(2, -3)
	assert.Empty(t, items)

	// absent id is a no-op
	items = s.UpdateQuantity(99, 4)
	assert.Empty(t, items)
}

func TestRemove(t *testing.T) {
	s := NewStore(storage.NewMemory())
	s.Add(product(1, "$10.00"))
	s.Add(product(2, "$20.00"))

	items := s.Remove(1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)

	// absent id is a no-op, not an error
	items = s.Remove(1)
	assert.Len(t, items, 1)
}

func TestClear(t *testing.T) {
	backend := storage.NewMemory()
	s := NewStore(backend)
	s.Add(product(1, "$10.00"))

	s.Clear()
	assert.Empty(t, s.Items())
	_, ok := backend.Get(StorageKey)
	assert.False(t, ok, "clear deletes the storage entry")
}

func TestTotal_ParsesCurrencyStrings(t *testing.T) {
	items := []Item{
		{Product: product(1, "$10.00"), Quantity: 2},
		{Product: product(2, "$1,250.50"), Quantity: 1},
	}
	assert.True(t, Total(items).Equal(decimal.RequireFromString("1270.50")),
		"got %s", Total(items))
}

func TestItemCount_SumsQuantities(t *testing.T) {
	items := []Item{
		{Product: product(1, "$10.00"), Quantity: 2},
		{Product: product(2, "$20.00"), Quantity: 3},
	}
	assert.Equal(t, 5, ItemCount(items))
	assert.Equal(t, 0, ItemCount(nil))
}

func TestItems_CorruptStorageDegradesToEmpty(t *testing.T) {
	backend := storage.NewMemory()
	require.NoError(t, backend.Set(StorageKey, "{not json"))

	s := NewStore(backend)
	assert.Equal(t, []Item{}, s.Items())

	// mutations still work after corruption
	items := s.Add(product(1, "$10.00"))
	assert.Len(t, items, 1)
}

func TestPersistence_SharedBackend(t *testing.T) {
	backend := storage.NewMemory()
	s := NewStore(backend)
	s.Add(product(1, "$10.00"))

	// a second store over the same backend sees the persisted cart
	s2 := NewStore(backend)
	items := s2.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
}

func TestAdd_OutOfStockPermittedAtStoreLayer(t *testing.T) {
	s := NewStore(storage.NewMemory())
	p := product(1, "$10.00")
	p.InStock = false

	items := s.Add(p)
	require.Len(t, items, 1)
}
