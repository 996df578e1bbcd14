package service

import (
	"context"

	"bookshop-api/internal/domains/catalog/model"
)

// FeedClientInterface is the outbound dependency of the catalog store.
type FeedClientInterface interface {
	FetchBooks(ctx context.Context) ([]model.Book, error)
}

// ServiceInterface is the catalog store contract.
type ServiceInterface interface {
	// Start triggers the one-and-only feed fetch. Safe to call more
	// than once; only the first call does anything.
	Start(ctx context.Context)

	// Snapshot returns the current catalog state. Before the fetch
	// settles every caller observes IsLoading=true.
	Snapshot() model.Snapshot

	// GetByID looks up a book by normalized id.
	// Absent is a valid terminal state, not an error.
	GetByID(id string) (model.Book, bool)

	// List applies a filter spec to the catalog snapshot and returns
	// the ordered display list.
	List(spec model.FilterSpec) ([]model.Book, error)

	// FilterOptions derives the distinct genres and formats present
	// in the catalog.
	FilterOptions() model.FilterOptions
}
