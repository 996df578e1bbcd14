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
	return catalog.Book{ID: catalog.BookID(id), Title: title}
}

func TestToggleRoundTrip(t *testing.T) {
	svc := NewFavoritesService(infraStorage.NewMemoryStore())
	book := testBook("1", "The Hobbit")

	assert.False(t, svc.IsFavorite("1"))

	svc.Toggle(book)
	assert.True(t, svc.IsFavorite("1"))

	// Two toggles restore the original membership state.
	svc.Toggle(book)
	assert.False(t, svc.IsFavorite("1"))
	assert.Empty(t, svc.Items())
}

func TestToggleMatchesNormalizedIDs(t *testing.T) {
	svc := NewFavoritesService(infraStorage.NewMemoryStore())

	svc.Toggle(testBook("42", "A"))
	assert.True(t, svc.IsFavorite(" 42 "))

	// A differently-padded form of the same id toggles off, not on.
	svc.Toggle(testBook(" 42", "A"))
	assert.False(t, svc.IsFavorite("42"))
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	svc := NewFavoritesService(infraStorage.NewMemoryStore())

	svc.Toggle(testBook("1", "A"))
	svc.Toggle(testBook("2", "B"))
	svc.Toggle(testBook("3", "C"))
	svc.Toggle(testBook("2", "B")) // remove the middle one

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, "C", items[1].Title)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := infraStorage.NewMemoryStore()

	first := NewFavoritesService(store)
	first.Toggle(testBook("1", "A"))
	first.Toggle(testBook("2", "B"))

	second := NewFavoritesService(store)
	assert.True(t, second.IsFavorite("1"))
	assert.True(t, second.IsFavorite("2"))
	assert.Len(t, second.Items(), 2)
}

func TestCorruptStoredFavoritesFallsBackToEmpty(t *testing.T) {
	store := infraStorage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), storage.KeyFavorites, "??"))

	svc := NewFavoritesService(store)
	assert.Empty(t, svc.Items())
}
