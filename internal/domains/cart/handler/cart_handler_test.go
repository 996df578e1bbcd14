package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "bookshop-api/internal/domains/auth/model"
	authService "bookshop-api/internal/domains/auth/service"
	catalog "bookshop-api/internal/domains/catalog/model"
	cartService "bookshop-api/internal/domains/cart/service"
	infraStorage "bookshop-api/internal/infrastructure/storage"
)

// stubLookup serves a fixed two-book catalog.
type stubLookup struct{}

func (stubLookup) GetByID(id string) (catalog.Book, bool) {
	books := map[string]catalog.Book{
		"1": {ID: "1", Title: "The Hobbit", Price: catalog.SpecialOfferPrice},
		"2": {ID: "2", Title: "Dune", Price: catalog.RegularPrice},
	}
	book, ok := books[catalog.NormalizeID(id)]
	return book, ok
}

type fixture struct {
	router *gin.Engine
	cart   *cartService.CartService
	auth   *authService.AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cart := cartService.NewCartService(infraStorage.NewMemoryStore())
	auth := authService.NewAuthService(infraStorage.NewMemoryStore())
	h := NewHandler(cart, stubLookup{}, auth)

	router := gin.New()
	router.GET("/cart", h.GetCart)
	router.POST("/cart/items", h.AddItem)
	router.PUT("/cart/items/:id", h.UpdateItemQuantity)
	router.DELETE("/cart/items/:id", h.RemoveItem)
	router.DELETE("/cart", h.ClearCart)
	router.POST("/cart/checkout", h.Checkout)

	return &fixture{router: router, cart: cart, auth: auth}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAddItem(t *testing.T) {
	f := newFixture(t)

	t.Run("known book", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/cart/items", `{"book_id":"1"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, f.cart.TotalItems())
	})

	t.Run("unknown book", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/cart/items", `{"book_id":"999"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing book_id", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/cart/items", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateAndRemove(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/cart/items", `{"book_id":"1"}`)

	w := f.do(t, http.MethodPut, "/cart/items/1", `{"quantity":4}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, f.cart.TotalItems())

	// Invalid quantity is swallowed by the store.
	f.do(t, http.MethodPut, "/cart/items/1", `{"quantity":-1}`)
	assert.Equal(t, 4, f.cart.TotalItems())

	w = f.do(t, http.MethodDelete, "/cart/items/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, f.cart.TotalItems())
}

func TestCheckoutRequiresLogin(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/cart/items", `{"book_id":"1"}`)

	w := f.do(t, http.MethodPost, "/cart/checkout", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The failed checkout must not touch the cart.
	assert.Equal(t, 1, f.cart.TotalItems())
}

func TestCheckoutClearsCartWhenAuthenticated(t *testing.T) {
	f := newFixture(t)
	f.auth.Login(authModel.User{Email: "ada@example.com", Name: "Ada"})

	f.do(t, http.MethodPost, "/cart/items", `{"book_id":"1"}`)
	f.do(t, http.MethodPost, "/cart/items", `{"book_id":"2"}`)

	w := f.do(t, http.MethodPost, "/cart/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			OrderNumber string `json:"order_number"`
			Total       string `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.OrderNumber)
	assert.Equal(t, "29.98", body.Data.Total) // 9.99 + 19.99

	assert.Equal(t, 0, f.cart.TotalItems())
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)
	f.auth.Login(authModel.User{Email: "ada@example.com", Name: "Ada"})

	w := f.do(t, http.MethodPost, "/cart/checkout", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
