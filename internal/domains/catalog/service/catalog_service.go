package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"bookshop-api/internal/domains/catalog/model"
	"bookshop-api/pkg/logger"
)

// CatalogService is the single source of truth for book records.
// It fetches the feed exactly once per process, applies the fixed
// pricing rule and caches the settled result for the process lifetime.
// There is no retry and no refetch.
type CatalogService struct {
	client FeedClientInterface

	mu        sync.RWMutex
	items     []model.Book
	isLoading bool
	errMsg    string

	fetchOnce sync.Once
}

func NewCatalogService(client FeedClientInterface) *CatalogService {
	return &CatalogService{
		client:    client,
		isLoading: true,
	}
}

// Start launches the feed fetch in the background. Every Snapshot
// reader before completion sees IsLoading=true; all of them observe
// the same eventual result.
func (s *CatalogService) Start(ctx context.Context) {
	s.fetchOnce.Do(func() {
		go s.load(ctx)
	})
}

func (s *CatalogService) load(ctx context.Context) {
	books, err := s.client.FetchBooks(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.isLoading = false
	if err != nil {
		logger.Error("catalog feed fetch failed", err)
		s.errMsg = model.FetchErrorMessage
		return
	}

	s.items = applyPricing(books)
	logger.Info("catalog loaded", map[string]interface{}{
		"books": len(s.items),
	})
}

// applyPricing overwrites whatever price the feed carried: the first
// SpecialOfferCount records in feed order get the offer price, the
// rest the regular price.
func applyPricing(books []model.Book) []model.Book {
	priced := make([]model.Book, len(books))
	for i, book := range books {
		if i < model.SpecialOfferCount {
			book.Price = model.SpecialOfferPrice
		} else {
			book.Price = model.RegularPrice
		}
		priced[i] = book
	}
	return priced
}

func (s *CatalogService) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Book, len(s.items))
	copy(items, s.items)

	return model.Snapshot{
		Items:     items,
		IsLoading: s.isLoading,
		Error:     s.errMsg,
	}
}

func (s *CatalogService) GetByID(id string) (model.Book, bool) {
	target := model.NormalizeID(id)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.items {
		if book.NormalizedID() == target {
			return book, true
		}
	}
	return model.Book{}, false
}

func (s *CatalogService) List(spec model.FilterSpec) ([]model.Book, error) {
	spec = spec.Normalize()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	snapshot := s.Snapshot()
	return ApplyFilter(snapshot.Items, spec), nil
}

// FilterOptions walks the catalog once and collects the distinct
// normalized genre labels and formats, each in first-seen order then
// sorted for stable sidebar rendering.
func (s *CatalogService) FilterOptions() model.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seenGenres := make(map[string]struct{})
	seenFormats := make(map[string]struct{})
	options := model.FilterOptions{
		Genres:  []string{},
		Formats: []string{},
	}

	for _, book := range s.items {
		for _, genre := range book.Genres {
			key := strings.ToLower(genre)
			if _, ok := seenGenres[key]; !ok {
				seenGenres[key] = struct{}{}
				options.Genres = append(options.Genres, genre)
			}
		}

		if book.Format != "" {
			key := strings.ToLower(book.Format)
			if _, ok := seenFormats[key]; !ok {
				seenFormats[key] = struct{}{}
				options.Formats = append(options.Formats, book.Format)
			}
		}
	}

	sort.Strings(options.Genres)
	sort.Strings(options.Formats)
	return options
}
