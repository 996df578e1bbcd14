package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// AddItemRequest adds one copy of a catalog book to the cart.
type AddItemRequest struct {
	BookID string `json:"book_id"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required.Error("book_id is required")),
	)
}

// UpdateQuantityRequest sets a line's quantity to an exact value.
// Deliberately not validated here: values below 1 are a silent no-op
// at the store, not a request error.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the full cart view.
type CartResponse struct {
	Items      []Item          `json:"items"`
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// CheckoutResponse confirms a simulated purchase.
type CheckoutResponse struct {
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	Message     string          `json:"message"`
}
