package service

import (
	"github.com/shopspring/decimal"

	catalog "bookshop-api/internal/domains/catalog/model"
	"bookshop-api/internal/domains/cart/model"
)

// ServiceInterface is the cart store contract. Mutations are atomic
// with respect to the in-memory collection; every mutation is followed
// by a fire-and-forget write to the persistence adapter.
type ServiceInterface interface {
	// Add puts a snapshot of the book into the cart. Adding an id
	// that is already present increments that line's quantity instead
	// of creating a second line.
	Add(book catalog.Book)

	// Remove deletes the line matching the id. No-op when absent.
	// Removal is the only way a line reaches quantity zero.
	Remove(id string)

	// UpdateQuantity sets the line's quantity to exactly q.
	// q < 1 and unknown ids are silent no-ops.
	UpdateQuantity(id string, q int)

	// Clear empties the cart.
	Clear()

	// Items returns the lines in insertion order.
	Items() []model.Item

	// TotalItems is the sum of all quantities, recomputed per call.
	TotalItems() int

	// Subtotal is the decimal sum of line subtotals.
	Subtotal() decimal.Decimal
}
