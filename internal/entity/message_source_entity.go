package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageSource links an assistant message to a document that informed it.
// Written only alongside assistant messages, one row per selected document.
type MessageSource struct {
	Id             uuid.UUID
	MessageId      uuid.UUID
	DocumentId     uuid.UUID
	RelevanceScore float64
	CreatedAt      time.Time

	Document *Document
}
