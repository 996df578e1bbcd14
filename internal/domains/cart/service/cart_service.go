package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	catalog "bookshop-api/internal/domains/catalog/model"
	"bookshop-api/internal/domains/cart/model"
	"bookshop-api/pkg/logger"
	"bookshop-api/pkg/storage"
)

// CartService holds the cart lines in memory and mirrors every change
// to the persistence adapter under the fixed cart key.
type CartService struct {
	store storage.Store

	mu    sync.Mutex
	items []model.Item
}

// NewCartService builds the cart and restores any persisted lines.
// Unparseable stored state is logged and replaced with an empty cart;
// it never surfaces to the caller.
func NewCartService(store storage.Store) *CartService {
	s := &CartService{
		store: store,
		items: []model.Item{},
	}
	s.restore()
	return s
}

func (s *CartService) restore() {
	raw, found, err := s.store.Get(context.Background(), storage.KeyCart)
	if err != nil {
		logger.Warn("failed to read stored cart", err)
		return
	}
	if !found {
		return
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("failed to parse stored cart, starting empty", err)
		return
	}
	s.items = items
}

// persist serializes the whole collection after a mutation.
// Write failures are logged, not propagated: a crash between mutation
// and write is an accepted data-loss window.
func (s *CartService) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		logger.Error("failed to encode cart", err)
		return
	}
	if err := s.store.Set(context.Background(), storage.KeyCart, string(data)); err != nil {
		logger.Error("failed to persist cart", err)
	}
}

func (s *CartService) Add(book catalog.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := book.NormalizedID()
	for i := range s.items {
		if s.items[i].NormalizedID() == target {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}

	s.items = append(s.items, model.Item{Book: book, Quantity: 1})
	s.persist()
}

func (s *CartService) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := catalog.NormalizeID(id)
	for i := range s.items {
		if s.items[i].NormalizedID() == target {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *CartService) UpdateQuantity(id string, q int) {
	if q < 1 {
		// Guard against invalid external input; removal is the only
		// path to zero.
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := catalog.NormalizeID(id)
	for i := range s.items {
		if s.items[i].NormalizedID() == target {
			s.items[i].Quantity = q
			s.persist()
			return
		}
	}
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []model.Item{}
	s.persist()
}

func (s *CartService) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *CartService) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}
