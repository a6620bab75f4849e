package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Document struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:text;not null"`
	DocumentType    string    `gorm:"type:varchar(32);not null;check:document_type IN ('legislation','case','regulation','guideline','other')"`
	Jurisdiction    *string   `gorm:"type:varchar(200)"`
	ReferenceNumber *string   `gorm:"type:varchar(200)"`
	EnactedDate     *time.Time
	EffectiveDate   *time.Time
	Summary         *string                     `gorm:"type:text"`
	Content         string                      `gorm:"type:text;not null"`
	FileUrl         *string                     `gorm:"type:text"`
	FileSize        *int64
	Tags            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedBy       *uuid.UUID                  `gorm:"type:uuid"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
