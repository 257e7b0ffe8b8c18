package dto

import "github.com/spec-kit/camera-gateway/internal/domain"

// PTZRequest payload for movement commands.
type PTZRequest struct {
	Direction string `json:"direction" validate:"required,oneof=pan tilt zoom"`
	Value     int    `json:"value"`
}

// PresetsResponse wraps the preset list.
type PresetsResponse struct {
	Presets []domain.Preset `json:"presets"`
}
