package storage

import "context"

// Store defines the contract for the key→string persistence layer.
// Allows swapping implementations (in-memory, file, Redis, Postgres)
// without touching the services that persist through it.
type Store interface {
	// Get reads the raw string stored under key.
	// Returns: (value, found, error)
	// - found = false: key absent, value is ""
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

// Storage keys for the three persisted collections. Fixed names,
// carried over from the original browser build of the shop.
const (
	KeyCart      = "bookshop_cart"
	KeyFavorites = "bookshop_favorites"
	KeyUser      = "bookshop_user"
)
