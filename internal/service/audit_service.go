package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/camera-gateway/internal/events"
)

// AuditService writes camera command events to the structured log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes the audit logger to command events.
func (s *AuditService) RegisterHandlers() {
	s.dispatcher.Subscribe(events.EventPTZCommand, s.logEvent)
	s.dispatcher.Subscribe(events.EventPresetRecall, s.logEvent)
}

func (s *AuditService) logEvent(_ context.Context, event events.Event) error {
	s.logger.Info("camera command",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("camera_uid", event.CameraUID),
		zap.String("user_id", event.UserID),
		zap.Time("timestamp", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
