package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByOrganizationID filters by owning organization
type ByOrganizationID struct {
	OrganizationID uuid.UUID
}

func (s ByOrganizationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.OrganizationID)
}

// ByDocumentType filters documents by type
type ByDocumentType struct {
	DocumentType string
}

func (s ByDocumentType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_type = ?", s.DocumentType)
}
