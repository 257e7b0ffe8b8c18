package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/camera-gateway/pkg/util"
)

const userIDKey = "auth_user_id"

// AuthMiddleware guards camera routes behind a valid bearer session token.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. The three rejection
// cases carry distinct messages but the same unauthorized status.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("No token provided")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return apperrors.NewUnauthorized("Invalid token format")
	}

	if !m.tokens.Validate(parts[1]) {
		return apperrors.NewUnauthorized("Invalid token")
	}

	c.Locals(userIDKey, m.tokens.UserID(parts[1]))
	return c.Next()
}

// UserIDFromContext retrieves the authenticated user's id, if any.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(userIDKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}
