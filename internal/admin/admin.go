// Package admin implements the staff login gate. It is a single hardcoded
// credential pair mirrored to the store so every dashboard client observes
// the same login state; it is a placeholder, not a security boundary.
package admin

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/arjunmehra/dhaba/internal/model"
	"github.com/arjunmehra/dhaba/internal/store"
)

type Service struct {
	username     string
	passwordHash []byte
	store        *store.AdminStore
	logger       *slog.Logger
}

// NewService hashes the configured password once at startup so Login can
// compare without keeping the plaintext around.
func NewService(username, password string, st *store.AdminStore, logger *slog.Logger) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		username:     username,
		passwordHash: hash,
		store:        st,
		logger:       logger,
	}, nil
}

// Login returns true iff both credentials match the configured pair. On
// success the flag is mirrored to the store; a mirror failure is logged and
// the successful result stands. On failure nothing is mutated.
func (s *Service) Login(username, password string) bool {
	if username != s.username {
		return false
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return false
	}

	if err := s.store.Set(model.AdminStatus{IsLoggedIn: true, AdminUser: username}); err != nil {
		s.logger.Error("mirror admin login", "error", err)
	}
	return true
}

// Logout unconditionally clears the flag.
func (s *Service) Logout() {
	if err := s.store.Set(model.AdminStatus{}); err != nil {
		s.logger.Error("mirror admin logout", "error", err)
	}
}

// Status returns the mirrored login state.
func (s *Service) Status() (model.AdminStatus, error) {
	return s.store.Get()
}
