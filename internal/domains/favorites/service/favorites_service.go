package service

import (
	"context"
	"encoding/json"
	"sync"

	catalog "bookshop-api/internal/domains/catalog/model"
	"bookshop-api/pkg/logger"
	"bookshop-api/pkg/storage"
)

// FavoritesService holds the favorited book snapshots in memory and
// mirrors every change to the persistence adapter.
type FavoritesService struct {
	store storage.Store

	mu    sync.Mutex
	items []catalog.Book
}

// NewFavoritesService builds the store and restores any persisted
// favorites. Corrupt stored state falls back to an empty list.
func NewFavoritesService(store storage.Store) *FavoritesService {
	s := &FavoritesService{
		store: store,
		items: []catalog.Book{},
	}
	s.restore()
	return s
}

func (s *FavoritesService) restore() {
	raw, found, err := s.store.Get(context.Background(), storage.KeyFavorites)
	if err != nil {
		logger.Warn("failed to read stored favorites", err)
		return
	}
	if !found {
		return
	}

	var items []catalog.Book
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("failed to parse stored favorites, starting empty", err)
		return
	}
	s.items = items
}

func (s *FavoritesService) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		logger.Error("failed to encode favorites", err)
		return
	}
	if err := s.store.Set(context.Background(), storage.KeyFavorites, string(data)); err != nil {
		logger.Error("failed to persist favorites", err)
	}
}

func (s *FavoritesService) Toggle(book catalog.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := book.NormalizedID()
	for i := range s.items {
		if s.items[i].NormalizedID() == target {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}

	s.items = append(s.items, book)
	s.persist()
}

func (s *FavoritesService) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := catalog.NormalizeID(id)
	for i := range s.items {
		if s.items[i].NormalizedID() == target {
			return true
		}
	}
	return false
}

func (s *FavoritesService) Items() []catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]catalog.Book, len(s.items))
	copy(items, s.items)
	return items
}
