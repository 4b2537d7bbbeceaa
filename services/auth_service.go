// File: /services/auth_service.go
package services

import (
	"sync"

	"motostock-api/models"
)

// CredentialVerifier is the slice of the user repository the
// authentication service depends on.
type CredentialVerifier interface {
	Authenticate(username, password string) (*models.User, error)
}

// AuthService is the single point of truth for who, if anyone, is
// logged in. It holds at most one authenticated account at a time;
// a second successful login replaces the current one. The session
// lives in memory only and dies with the process.
type AuthService struct {
	users CredentialVerifier

	mu      sync.RWMutex
	current *models.User
}

func NewAuthService(users CredentialVerifier) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the credentials and, on success, stores the account
// as the current session. A failed attempt leaves the existing session
// untouched.
func (s *AuthService) Login(username, password string) bool {
	user, err := s.users.Authenticate(username, password)
	if err != nil {
		return false
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return true
}

// Logout clears the current session unconditionally.
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// IsAdmin reports whether an account is logged in and holds the
// administrator role.
func (s *AuthService) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.IsAdmin()
}

// CurrentUser returns the logged-in account, or nil when anonymous.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
