package container

import (
	"context"
	"fmt"
	"log"

	"bookshop-api/internal/config"
	infraStorage "bookshop-api/internal/infrastructure/storage"
	"bookshop-api/pkg/storage"

	authHandler "bookshop-api/internal/domains/auth/handler"
	authService "bookshop-api/internal/domains/auth/service"
	cartHandler "bookshop-api/internal/domains/cart/handler"
	cartService "bookshop-api/internal/domains/cart/service"
	catalogClient "bookshop-api/internal/domains/catalog/client"
	catalogHandler "bookshop-api/internal/domains/catalog/handler"
	catalogService "bookshop-api/internal/domains/catalog/service"
	favoritesHandler "bookshop-api/internal/domains/favorites/handler"
	favoritesService "bookshop-api/internal/domains/favorites/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph. Each store is a singleton: one cart, one
// favorites list, one identity per running process, matching the
// one-shop-per-browser shape of the original storefront.
type Container struct {
	// Infrastructure — shared across all domains
	Config *config.Config
	Store  storage.Store

	// Services — the four state containers
	CatalogService   catalogService.ServiceInterface
	CartService      cartService.ServiceInterface
	FavoritesService favoritesService.ServiceInterface
	AuthService      authService.ServiceInterface

	// Handlers — thin HTTP layer over the services
	CatalogHandler   *catalogHandler.Handler
	CartHandler      *cartHandler.Handler
	FavoritesHandler *favoritesHandler.Handler
	AuthHandler      *authHandler.Handler

	cleanup []func()
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph in order:
// config → storage → services → handlers. The catalog fetch is kicked
// off here so early requests observe the loading state rather than
// triggering fetches of their own.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE PERSISTENCE ADAPTER
	// ========================================
	store, err := buildStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Store = store
	log.Printf("✅ Storage ready (backend: %s)", cfg.Storage.Backend)

	// ========================================
	// STEP 3: BUILD SERVICES
	// ========================================
	feed := catalogClient.NewFeedClient(cfg.Catalog.Endpoint, cfg.Catalog.FetchTimeout)
	c.CatalogService = catalogService.NewCatalogService(feed)
	c.CartService = cartService.NewCartService(store)
	c.FavoritesService = favoritesService.NewFavoritesService(store)
	c.AuthService = authService.NewAuthService(store)

	// Fetch once per process; no retry, no refetch.
	c.CatalogService.Start(context.Background())

	// ========================================
	// STEP 4: BUILD HANDLERS
	// ========================================
	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService)
	c.CartHandler = cartHandler.NewHandler(c.CartService, c.CatalogService, c.AuthService)
	c.FavoritesHandler = favoritesHandler.NewHandler(c.FavoritesService, c.CatalogService)
	c.AuthHandler = authHandler.NewHandler(c.AuthService)

	log.Println("✅ Container initialized")
	return c, nil
}

// buildStore picks the persistence backend from config.
func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return infraStorage.NewMemoryStore(), nil

	case "file":
		return infraStorage.NewFileStore(cfg.Storage.FilePath), nil

	case "redis":
		store := infraStorage.NewRedisStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := store.Ping(context.Background()); err != nil {
			return nil, err
		}
		return store, nil

	case "postgres":
		return infraStorage.NewPostgresStore(context.Background(), cfg.Database)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	for _, fn := range c.cleanup {
		fn()
	}

	switch store := c.Store.(type) {
	case *infraStorage.RedisStore:
		if err := store.Close(); err != nil {
			log.Printf("⚠️  Failed to close redis store: %v", err)
		}
	case *infraStorage.PostgresStore:
		store.Close()
	}
}
