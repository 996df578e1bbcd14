package service

import (
	"context"
	"encoding/json"
	"sync"

	"bookshop-api/internal/domains/auth/model"
	"bookshop-api/pkg/logger"
	"bookshop-api/pkg/storage"
)

// AuthService holds the optional current identity and mirrors login
// and logout to the persistence adapter.
type AuthService struct {
	store storage.Store

	mu   sync.Mutex
	user *model.User
}

// NewAuthService builds the store and restores a persisted identity
// when one exists. Corrupt stored state means "signed out".
func NewAuthService(store storage.Store) *AuthService {
	s := &AuthService{store: store}
	s.restore()
	return s
}

func (s *AuthService) restore() {
	raw, found, err := s.store.Get(context.Background(), storage.KeyUser)
	if err != nil {
		logger.Warn("failed to read stored identity", err)
		return
	}
	if !found {
		return
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Warn("failed to parse stored identity, staying signed out", err)
		return
	}
	s.user = &user
}

func (s *AuthService) Login(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user

	data, err := json.Marshal(user)
	if err != nil {
		logger.Error("failed to encode identity", err)
		return
	}
	if err := s.store.Set(context.Background(), storage.KeyUser, string(data)); err != nil {
		logger.Error("failed to persist identity", err)
	}
}

func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.store.Delete(context.Background(), storage.KeyUser); err != nil {
		logger.Error("failed to remove persisted identity", err)
	}
}

func (s *AuthService) Current() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *AuthService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user != nil
}
