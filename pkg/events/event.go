package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicQueryAnswered carries one event per completed chat query.
const TopicQueryAnswered = "chat.query.answered"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "QUERY_ANSWERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// QueryAnswered is emitted after the full query pipeline has produced and
// persisted an answer.
type QueryAnswered struct {
	SessionId      uuid.UUID
	MessageId      string
	UserId         uuid.UUID
	OrganizationId uuid.UUID
	QueryLength    int
	SourceCount    int
	DurationMs     int64
	FallbackUsed   bool
	OccurredAt     time.Time
}

func (e QueryAnswered) EventType() string {
	return "QUERY_ANSWERED"
}

func (e QueryAnswered) Payload() map[string]interface{} {
	return map[string]interface{}{
		"session_id":      e.SessionId.String(),
		"message_id":      e.MessageId,
		"user_id":         e.UserId.String(),
		"organization_id": e.OrganizationId.String(),
		"query_length":    e.QueryLength,
		"source_count":    e.SourceCount,
		"duration_ms":     e.DurationMs,
		"fallback_used":   e.FallbackUsed,
	}
}

func (e QueryAnswered) Timestamp() time.Time {
	return e.OccurredAt
}
