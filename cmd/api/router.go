package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookshop-api/internal/shared/middleware"
	"bookshop-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(v1, c)
		setupCartRoutes(v1, c)
		setupFavoritesRoutes(v1, c)
		setupAuthRoutes(v1, c)
	}

	return router
}

// ========================================
// CATALOG ROUTES
// ========================================
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.CatalogHandler.ListBooks)
		books.GET("/filters", c.CatalogHandler.GetFilterOptions)
		books.GET("/:id", c.CatalogHandler.GetBookDetail)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/cart")
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PUT("/items/:id", c.CartHandler.UpdateItemQuantity)
		cart.DELETE("/items/:id", c.CartHandler.RemoveItem)
		cart.DELETE("", c.CartHandler.ClearCart)
		cart.POST("/checkout", c.CartHandler.Checkout)
	}
}

// ========================================
// FAVORITES ROUTES
// ========================================
func setupFavoritesRoutes(v1 *gin.RouterGroup, c *container.Container) {
	favorites := v1.Group("/favorites")
	{
		favorites.GET("", c.FavoritesHandler.ListFavorites)
		favorites.POST("/toggle", c.FavoritesHandler.ToggleFavorite)
		favorites.GET("/:id", c.FavoritesHandler.CheckFavorite)
	}
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.GET("/me", c.AuthHandler.Me)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check storage
		storageStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.Store.Ping(ctx); err != nil {
			storageStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}

		// Catalog state is advisory: an unloaded catalog degrades the
		// views, it does not take the service down.
		snapshot := appCtx.CatalogService.Snapshot()
		catalogStatus := "ok"
		if snapshot.IsLoading {
			catalogStatus = "loading"
		} else if snapshot.Error != "" {
			catalogStatus = snapshot.Error
		}

		health["services"] = gin.H{
			"storage": storageStatus,
			"catalog": catalogStatus,
		}

		statusCode := http.StatusOK
		if storageStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
