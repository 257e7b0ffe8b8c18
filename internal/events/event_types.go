package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPTZCommand   EventType = "camera_ptz_command"
	EventPresetRecall EventType = "camera_preset_recall"
)

// Event represents a camera command emitted by the service layer for the
// audit trail.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	CameraUID string      `json:"camera_uid"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps identity and time onto a command event.
func NewEvent(eventType EventType, cameraUID, userID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		CameraUID: cameraUID,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// PTZCommandPayload payload.
type PTZCommandPayload struct {
	Direction string `json:"direction"`
	Value     int    `json:"value"`
	Success   bool   `json:"success"`
}

// PresetRecallPayload payload.
type PresetRecallPayload struct {
	PresetID string `json:"preset_id"`
	Success  bool   `json:"success"`
}
