package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is append-only; conversation order is created_at ascending.
type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string // user, assistant, system
	Content   string
	CreatedAt time.Time
}
