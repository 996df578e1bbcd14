package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "bookshop-api/internal/domains/catalog/model"
	infraStorage "bookshop-api/internal/infrastructure/storage"
	"bookshop-api/pkg/storage"
)

func testBook(id, title string) catalog.Book {
	return catalog.Book{
		ID:    catalog.BookID(id),
		Title: title,
		Price: catalog.SpecialOfferPrice,
	}
}

func TestAddIsIdempotentPerID(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())

	book := testBook("1", "The Hobbit")
	svc.Add(book)
	svc.Add(book)

	items := svc.Items()
	require.Len(t, items, 1, "same id must collapse into one line")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, svc.TotalItems())
}

func TestAddMatchesDifferentlyTypedIDs(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())

	svc.Add(testBook("42", "A"))
	svc.Add(testBook(" 42 ", "A")) // same logical id, sloppier form

	require.Len(t, svc.Items(), 1)
	assert.Equal(t, 2, svc.Items()[0].Quantity)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())

	svc.Add(testBook("1", "A"))
	svc.Add(testBook("2", "B"))
	svc.Add(testBook("1", "A"))
	svc.Add(testBook("3", "C"))

	items := svc.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, "B", items[1].Title)
	assert.Equal(t, "C", items[2].Title)
}

func TestUpdateQuantityFloor(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())
	svc.Add(testBook("1", "A"))
	svc.UpdateQuantity("1", 5)
	require.Equal(t, 5, svc.Items()[0].Quantity)

	// Below 1 is a no-op, not an error: quantity stays as it was.
	svc.UpdateQuantity("1", 0)
	assert.Equal(t, 5, svc.Items()[0].Quantity)
	svc.UpdateQuantity("1", -3)
	assert.Equal(t, 5, svc.Items()[0].Quantity)
}

func TestUpdateQuantityUnknownID(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())
	svc.Add(testBook("1", "A"))

	svc.UpdateQuantity("999", 3)
	assert.Equal(t, 1, svc.TotalItems())
}

func TestRemove(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())
	svc.Add(testBook("1", "A"))
	svc.Add(testBook("2", "B"))

	svc.Remove("1")
	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Title)

	// Removing an absent id is a silent no-op.
	svc.Remove("1")
	assert.Len(t, svc.Items(), 1)
}

func TestClear(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())
	svc.Add(testBook("1", "A"))
	svc.Add(testBook("2", "B"))

	svc.Clear()
	assert.Empty(t, svc.Items())
	assert.Equal(t, 0, svc.TotalItems())
}

func TestSubtotal(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())

	special := testBook("1", "A") // 9.99
	regular := testBook("2", "B")
	regular.Price = catalog.RegularPrice // 19.99

	svc.Add(special)
	svc.Add(special)
	svc.Add(regular)

	// 2×9.99 + 19.99 = 39.97
	assert.Equal(t, "39.97", svc.Subtotal().StringFixed(2))
}

func TestSubtotalFallsBackToRegularPrice(t *testing.T) {
	svc := NewCartService(infraStorage.NewMemoryStore())

	unpriced := catalog.Book{ID: "1", Title: "Old Snapshot"}
	svc.Add(unpriced)

	assert.Equal(t, "19.99", svc.Subtotal().StringFixed(2))
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := infraStorage.NewMemoryStore()

	first := NewCartService(store)
	first.Add(testBook("1", "A"))
	first.Add(testBook("2", "B"))
	first.UpdateQuantity("2", 3)

	// A fresh service over the same store reconstructs the cart.
	second := NewCartService(store)
	items := second.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "B", items[1].Title)
	assert.Equal(t, 3, items[1].Quantity)
	assert.True(t, items[0].Price.Equal(catalog.SpecialOfferPrice))
}

func TestCorruptStoredCartFallsBackToEmpty(t *testing.T) {
	store := infraStorage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), storage.KeyCart, "{not json"))

	svc := NewCartService(store)
	assert.Empty(t, svc.Items())

	// The store still works after recovery.
	svc.Add(testBook("1", "A"))
	assert.Equal(t, 1, svc.TotalItems())
}
