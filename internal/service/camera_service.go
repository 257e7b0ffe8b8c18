package service

import (
	"context"

	"github.com/spec-kit/camera-gateway/internal/domain"
	"github.com/spec-kit/camera-gateway/internal/events"
	"github.com/spec-kit/camera-gateway/internal/reolink"
)

// CameraService fronts the upstream client for the single configured camera
// and publishes audit events for movement commands.
type CameraService struct {
	client     *reolink.Client
	dispatcher events.Dispatcher
}

// NewCameraService builds the service.
func NewCameraService(client *reolink.Client, dispatcher events.Dispatcher) *CameraService {
	return &CameraService{client: client, dispatcher: dispatcher}
}

// Status returns the mapped camera status or the upstream failure.
func (s *CameraService) Status(ctx context.Context) (*domain.CameraStatus, error) {
	return s.client.GetCameraStatus(ctx, s.client.CameraUID())
}

// PTZ forwards a single-axis movement command.
func (s *CameraService) PTZ(ctx context.Context, userID, direction string, value int) domain.CommandResult {
	result := s.client.PTZControl(ctx, s.client.CameraUID(), direction, value)

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventPTZCommand, s.client.CameraUID(), userID, events.PTZCommandPayload{
		Direction: direction,
		Value:     value,
		Success:   result.Success,
	}))
	return result
}

// RecallPreset moves the camera to a stored preset.
func (s *CameraService) RecallPreset(ctx context.Context, userID, presetID string) domain.CommandResult {
	result := s.client.RecallPreset(ctx, s.client.CameraUID(), presetID)

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventPresetRecall, s.client.CameraUID(), userID, events.PresetRecallPayload{
		PresetID: presetID,
		Success:  result.Success,
	}))
	return result
}

// Presets lists stored presets; upstream failures yield an empty list.
func (s *CameraService) Presets(ctx context.Context) []domain.Preset {
	return s.client.GetPresets(ctx, s.client.CameraUID())
}

// UpstreamSession exposes the cached vendor session for readiness reporting.
func (s *CameraService) UpstreamSession() domain.UpstreamSession {
	return s.client.SessionSnapshot()
}
