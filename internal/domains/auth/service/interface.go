package service

import (
	"bookshop-api/internal/domains/auth/model"
)

// ServiceInterface is the identity store contract. It never talks to
// a backend: Login accepts any identity unconditionally.
type ServiceInterface interface {
	// Login stores the declared identity and persists it.
	Login(user model.User)

	// Logout clears the identity and removes the persisted record.
	Logout()

	// Current returns the identity, if one is present.
	Current() (model.User, bool)

	// IsAuthenticated is true iff an identity is present. Consumers
	// that gate actions (checkout) must check this themselves.
	IsAuthenticated() bool
}
