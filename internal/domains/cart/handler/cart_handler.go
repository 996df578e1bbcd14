package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalog "bookshop-api/internal/domains/catalog/model"
	"bookshop-api/internal/domains/cart/model"
	service "bookshop-api/internal/domains/cart/service"
	"bookshop-api/internal/shared/response"
	"bookshop-api/pkg/logger"
)

// BookLookup is the slice of the catalog the cart needs.
// Narrow interface to avoid coupling the handler to the whole catalog.
type BookLookup interface {
	GetByID(id string) (catalog.Book, bool)
}

// AuthChecker gates checkout. The cart itself never enforces the
// gate — the checkout trigger is responsible for checking it.
type AuthChecker interface {
	IsAuthenticated() bool
}

type Handler struct {
	service service.ServiceInterface
	books   BookLookup
	auth    AuthChecker
}

func NewHandler(service service.ServiceInterface, books BookLookup, auth AuthChecker) *Handler {
	return &Handler{
		service: service,
		books:   books,
		auth:    auth,
	}
}

// GetCart - GET /v1/cart
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, http.StatusOK, model.CartResponse{
		Items:      h.service.Items(),
		TotalItems: h.service.TotalItems(),
		Subtotal:   h.service.Subtotal(),
	})
}

// AddItem - POST /v1/cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, found := h.books.GetByID(req.BookID)
	if !found {
		response.NotFound(c, "Book not found")
		return
	}

	h.service.Add(book)
	response.Success(c, http.StatusCreated, model.CartResponse{
		Items:      h.service.Items(),
		TotalItems: h.service.TotalItems(),
		Subtotal:   h.service.Subtotal(),
	})
}

// UpdateItemQuantity - PUT /v1/cart/items/:id
func (h *Handler) UpdateItemQuantity(c *gin.Context) {
	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Quantities below 1 are silently ignored by the store.
	h.service.UpdateQuantity(c.Param("id"), req.Quantity)
	response.Success(c, http.StatusOK, model.CartResponse{
		Items:      h.service.Items(),
		TotalItems: h.service.TotalItems(),
		Subtotal:   h.service.Subtotal(),
	})
}

// RemoveItem - DELETE /v1/cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	h.service.Remove(c.Param("id"))
	response.Success(c, http.StatusOK, model.CartResponse{
		Items:      h.service.Items(),
		TotalItems: h.service.TotalItems(),
		Subtotal:   h.service.Subtotal(),
	})
}

// ClearCart - DELETE /v1/cart
func (h *Handler) ClearCart(c *gin.Context) {
	h.service.Clear()
	response.Success(c, http.StatusOK, model.CartResponse{
		Items:      []model.Item{},
		TotalItems: 0,
		Subtotal:   h.service.Subtotal(),
	})
}

// Checkout - POST /v1/cart/checkout
// Simulated purchase: no payment provider is involved. The caller
// must be signed in; an anonymous checkout leaves the cart untouched.
func (h *Handler) Checkout(c *gin.Context) {
	if !h.auth.IsAuthenticated() {
		response.Unauthorized(c, "You need to be logged in to complete your purchase.")
		return
	}

	if h.service.TotalItems() == 0 {
		response.BadRequest(c, "Your cart is empty")
		return
	}

	total := h.service.Subtotal()
	orderNumber := uuid.New().String()
	h.service.Clear()

	logger.Info("checkout completed", map[string]interface{}{
		"order_number": orderNumber,
		"total":        total.String(),
	})

	response.Success(c, http.StatusOK, model.CheckoutResponse{
		OrderNumber: orderNumber,
		Total:       total,
		Message:     "Thank you for your purchase!",
	})
}
