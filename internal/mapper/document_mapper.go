package mapper

import (
	"time"

	"legal-chat-be/internal/entity"
	"legal-chat-be/internal/model"

	"gorm.io/datatypes"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Document{
		Id:              d.Id,
		OrganizationId:  d.OrganizationId,
		Title:           d.Title,
		DocumentType:    d.DocumentType,
		Jurisdiction:    deref(d.Jurisdiction),
		ReferenceNumber: deref(d.ReferenceNumber),
		EnactedDate:     d.EnactedDate,
		EffectiveDate:   d.EffectiveDate,
		Summary:         deref(d.Summary),
		Content:         d.Content,
		FileUrl:         deref(d.FileUrl),
		FileSize:        derefInt64(d.FileSize),
		Tags:            []string(d.Tags),
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Document{
		Id:              d.Id,
		OrganizationId:  d.OrganizationId,
		Title:           d.Title,
		DocumentType:    d.DocumentType,
		Jurisdiction:    optional(d.Jurisdiction),
		ReferenceNumber: optional(d.ReferenceNumber),
		EnactedDate:     d.EnactedDate,
		EffectiveDate:   d.EffectiveDate,
		Summary:         optional(d.Summary),
		Content:         d.Content,
		FileUrl:         optional(d.FileUrl),
		FileSize:        optionalInt64(d.FileSize),
		Tags:            datatypes.NewJSONSlice(d.Tags),
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt64(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
