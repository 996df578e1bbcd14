package model

import (
	"github.com/shopspring/decimal"

	catalog "bookshop-api/internal/domains/catalog/model"
)

// Item is one cart line: a snapshot of the book at add time plus a
// quantity. The snapshot is deliberate — the cart keeps showing the
// book as it was when it was added, even if the catalog drifts.
type Item struct {
	catalog.Book
	Quantity int `json:"quantity"`
}

// UnitPrice returns the snapshot price, defaulting to the regular
// price when the snapshot predates the pricing rule.
func (i *Item) UnitPrice() decimal.Decimal {
	if i.Price.IsZero() {
		return catalog.RegularPrice
	}
	return i.Price
}

// Subtotal is quantity × unit price for this line.
func (i *Item) Subtotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}
