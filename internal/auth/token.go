package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and validates website session tokens.
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	registry *Registry
	now      func() time.Time
}

// NewTokenManager builds a new manager. ttlHours defaults to 24 when
// non-positive.
func NewTokenManager(secret string, ttlHours int, registry *Registry) *TokenManager {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &TokenManager{
		secret:   []byte(secret),
		ttl:      time.Duration(ttlHours) * time.Hour,
		registry: registry,
		now:      time.Now,
	}
}

// Claims describes the session JWT payload.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Issue builds and signs a session token for the user and records it in the
// live-token registry. A token validates from issuance until its expiry.
func (tm *TokenManager) Issue(userID string) (string, time.Time, error) {
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(tm.ttl)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	tm.registry.Add(tokenString)
	return tokenString, expiresAt, nil
}

// Validate reports whether the token is live: it must be present in the
// registry, carry a verifiable signature and an unexpired embedded expiry.
// Every failure mode collapses to false; callers get no distinguishing
// detail.
func (tm *TokenManager) Validate(tokenStr string) bool {
	if !tm.registry.Contains(tokenStr) {
		return false
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return false
	}
	return parsed.Valid
}

// UserID extracts the user id claim from an already-validated token. Returns
// the empty string when the token does not parse.
func (tm *TokenManager) UserID(tokenStr string) string {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return ""
	}
	return claims.UserID
}
