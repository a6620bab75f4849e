package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is a legal instrument owned by an organization. Content may be
// arbitrarily long; relevance scoring only reads a bounded prefix.
type Document struct {
	Id              uuid.UUID
	OrganizationId  uuid.UUID
	Title           string
	DocumentType    string // legislation, case, regulation, guideline, other
	Jurisdiction    string
	ReferenceNumber string
	EnactedDate     *time.Time
	EffectiveDate   *time.Time
	Summary         string
	Content         string
	FileUrl         string
	FileSize        int64
	Tags            []string
	CreatedBy       *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
