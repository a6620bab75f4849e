package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile.Id equals the auth subject; rows are provisioned by the
// identity backend, this service only reads them.
type UserProfile struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationId *uuid.UUID `gorm:"type:uuid;index"`
	Role           string     `gorm:"type:varchar(16);not null;default:'user';check:role IN ('admin','user')"`
	FullName       *string    `gorm:"type:text"`
	Email          string     `gorm:"type:text;not null"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`

	Organization *Organization `gorm:"foreignKey:OrganizationId;references:Id"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
