package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageSource struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MessageId      uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentId     uuid.UUID `gorm:"type:uuid;not null;index"`
	RelevanceScore float64   `gorm:"not null;default:1.0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	Message  *ChatMessage `gorm:"foreignKey:MessageId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Document *Document    `gorm:"foreignKey:DocumentId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (MessageSource) TableName() string {
	return "message_sources"
}
