package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/camera-gateway/internal/api/dto"
	"github.com/spec-kit/camera-gateway/internal/service"
	apperrors "github.com/spec-kit/camera-gateway/pkg/util"
)

// AuthHandler exposes the website login endpoint.
type AuthHandler struct {
	auth     *service.AuthService
	validate *validator.Validate
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService, validate: validator.New()}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("id and password required")
	}

	token, _, err := h.auth.Login(req.ID, req.Password)
	if err != nil {
		return apperrors.NewUnauthorized("Invalid credentials")
	}

	return c.JSON(dto.LoginResponse{Success: true, Token: token})
}
