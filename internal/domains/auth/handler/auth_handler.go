package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshop-api/internal/domains/auth/model"
	service "bookshop-api/internal/domains/auth/service"
	"bookshop-api/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Login - POST /v1/auth/login
// Accepts any well-formed identity. Deliberately not authentication:
// the shop treats login as declaring an identity.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := model.User{Email: req.Email, Name: req.Name}
	h.service.Login(user)

	response.Success(c, http.StatusOK, user)
}

// Logout - POST /v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout()
	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// Me - GET /v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	user, ok := h.service.Current()
	if !ok {
		response.NotFound(c, "Not signed in")
		return
	}
	response.Success(c, http.StatusOK, user)
}
