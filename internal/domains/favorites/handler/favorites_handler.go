package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog "bookshop-api/internal/domains/catalog/model"
	service "bookshop-api/internal/domains/favorites/service"
	"bookshop-api/internal/shared/response"
)

// BookLookup is the slice of the catalog the favorites need.
type BookLookup interface {
	GetByID(id string) (catalog.Book, bool)
}

type Handler struct {
	service service.ServiceInterface
	books   BookLookup
}

func NewHandler(service service.ServiceInterface, books BookLookup) *Handler {
	return &Handler{
		service: service,
		books:   books,
	}
}

// ListFavorites - GET /v1/favorites
func (h *Handler) ListFavorites(c *gin.Context) {
	items := h.service.Items()
	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"favorites": items,
	}, &response.Meta{Total: len(items)})
}

// ToggleFavorite - POST /v1/favorites/toggle
func (h *Handler) ToggleFavorite(c *gin.Context) {
	var req struct {
		BookID string `json:"book_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BookID == "" {
		response.BadRequest(c, "book_id is required")
		return
	}

	book, found := h.books.GetByID(req.BookID)
	if !found {
		response.NotFound(c, "Book not found")
		return
	}

	h.service.Toggle(book)
	response.Success(c, http.StatusOK, gin.H{
		"book_id":     book.ID,
		"is_favorite": h.service.IsFavorite(req.BookID),
	})
}

// CheckFavorite - GET /v1/favorites/:id
// Membership probe; absent books simply report false.
func (h *Handler) CheckFavorite(c *gin.Context) {
	id := c.Param("id")
	response.Success(c, http.StatusOK, gin.H{
		"book_id":     id,
		"is_favorite": h.service.IsFavorite(id),
	})
}
