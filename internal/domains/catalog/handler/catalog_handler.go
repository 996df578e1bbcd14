package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshop-api/internal/domains/catalog/model"
	service "bookshop-api/internal/domains/catalog/service"
	"bookshop-api/internal/shared/response"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /v1/books
// Query params: category, format, search, searchBy, type, limit
func (h *Handler) ListBooks(c *gin.Context) {
	spec := model.FilterSpec{
		Type:        c.DefaultQuery("type", model.TypeAll),
		GenreFilter: c.Query("category"),
		Format:      c.Query("format"),
		Search:      c.Query("search"),
		SearchBy:    c.DefaultQuery("searchBy", model.SearchByTitle),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			spec.Limit = l
		}
	}

	if err := spec.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	snapshot := h.service.Snapshot()
	if snapshot.Error != "" {
		response.ServiceUnavailable(c, snapshot.Error)
		return
	}

	books, err := h.service.List(spec)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"books":      books,
		"is_loading": snapshot.IsLoading,
	}, &response.Meta{Total: len(books)})
}

// GetBookDetail - GET /v1/books/:id
func (h *Handler) GetBookDetail(c *gin.Context) {
	id := c.Param("id")

	book, found := h.service.GetByID(id)
	if !found {
		// Covers both an unknown id and a catalog that has not
		// loaded: the lookup contract is simply "absent".
		response.NotFound(c, "Book not found")
		return
	}

	response.Success(c, http.StatusOK, book)
}

// GetFilterOptions - GET /v1/books/filters
// Distinct genres and formats for building the filter sidebar.
func (h *Handler) GetFilterOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.FilterOptions())
}
