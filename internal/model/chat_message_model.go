package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index:idx_session_msgs,priority:1"`
	Role      string    `gorm:"type:varchar(16);not null;check:role IN ('user','assistant','system')"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_session_msgs,priority:2"`

	Session *ChatSession `gorm:"foreignKey:SessionId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
