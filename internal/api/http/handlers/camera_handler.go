package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/camera-gateway/internal/api/dto"
	"github.com/spec-kit/camera-gateway/internal/auth"
	"github.com/spec-kit/camera-gateway/internal/service"
	apperrors "github.com/spec-kit/camera-gateway/pkg/util"
)

// CameraHandler exposes proxied camera operations. Upstream failures arrive
// as operation-shaped values from the service layer and are returned with a
// 200 status; only authentication and validation failures use error statuses.
type CameraHandler struct {
	camera   *service.CameraService
	validate *validator.Validate
}

// NewCameraHandler constructs handler.
func NewCameraHandler(cameraService *service.CameraService) *CameraHandler {
	return &CameraHandler{camera: cameraService, validate: validator.New()}
}

// Status handles GET /api/camera/status.
func (h *CameraHandler) Status(c *fiber.Ctx) error {
	status, err := h.camera.Status(c.UserContext())
	if err != nil {
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(status)
}

// PTZ handles POST /api/camera/ptz.
func (h *CameraHandler) PTZ(c *fiber.Ctx) error {
	var req dto.PTZRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("direction must be one of pan, tilt, zoom")
	}

	userID, _ := auth.UserIDFromContext(c)
	result := h.camera.PTZ(c.UserContext(), userID, req.Direction, req.Value)
	return c.JSON(result)
}

// RecallPreset handles POST /api/camera/preset/:id.
func (h *CameraHandler) RecallPreset(c *fiber.Ctx) error {
	presetID := c.Params("id")
	if presetID == "" {
		return apperrors.NewValidationError("preset id required")
	}

	userID, _ := auth.UserIDFromContext(c)
	result := h.camera.RecallPreset(c.UserContext(), userID, presetID)
	return c.JSON(result)
}

// Presets handles GET /api/camera/presets.
func (h *CameraHandler) Presets(c *fiber.Ctx) error {
	presets := h.camera.Presets(c.UserContext())
	return c.JSON(dto.PresetsResponse{Presets: presets})
}
