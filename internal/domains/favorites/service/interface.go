package service

import (
	catalog "bookshop-api/internal/domains/catalog/model"
)

// ServiceInterface is the favorites store contract. Membership is by
// normalized book id; entries keep insertion order.
type ServiceInterface interface {
	// Toggle adds the book when absent and removes it when present.
	// One operation, so repeated calls flip membership.
	Toggle(book catalog.Book)

	// IsFavorite tests membership by normalized id.
	IsFavorite(id string) bool

	// Items returns the favorites in insertion order.
	Items() []catalog.Book
}
