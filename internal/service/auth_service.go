package service

import (
	"errors"
	"time"

	"github.com/spec-kit/camera-gateway/internal/auth"
	"github.com/spec-kit/camera-gateway/internal/config"
)

// ErrInvalidCredentials rejects any login pair other than the configured one.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService implements the website login flow. A single fixed (id,
// password) pair is accepted; there is no user store, lockout or rate
// limiting.
type AuthService struct {
	tokens   *auth.TokenManager
	loginID  string
	password string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, registry *auth.Registry) *AuthService {
	return &AuthService{
		tokens:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours, registry),
		loginID:  cfg.Website.LoginID,
		password: cfg.Website.LoginPassword,
	}
}

// Login issues a session token when the supplied pair exactly matches the
// configured credentials.
func (s *AuthService) Login(id, password string) (string, time.Time, error) {
	if id != s.loginID || password != s.password {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.tokens.Issue(id)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
