package dto

import (
	"time"

	"github.com/google/uuid"
)

type QueryRequest struct {
	Query     string `json:"query" validate:"required,min=1,max=5000"`
	SessionId string `json:"session_id" validate:"omitempty,uuid"`
}

type QueryResponse struct {
	Answer    string             `json:"answer"`
	Sources   []DocumentResponse `json:"sources"`
	SessionId uuid.UUID          `json:"session_id"`
	MessageId string             `json:"message_id"`
}

type DocumentResponse struct {
	Id              uuid.UUID  `json:"id"`
	OrganizationId  uuid.UUID  `json:"organization_id"`
	Title           string     `json:"title"`
	DocumentType    string     `json:"document_type"`
	Jurisdiction    string     `json:"jurisdiction,omitempty"`
	ReferenceNumber string     `json:"reference_number,omitempty"`
	EnactedDate     *time.Time `json:"enacted_date,omitempty"`
	EffectiveDate   *time.Time `json:"effective_date,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	Content         string     `json:"content"`
	FileUrl         string     `json:"file_url,omitempty"`
	FileSize        int64      `json:"file_size,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type MessageResponse struct {
	Id        uuid.UUID        `json:"id"`
	SessionId uuid.UUID        `json:"session_id"`
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	Sources   []SourceResponse `json:"sources,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

type SourceResponse struct {
	DocumentId     uuid.UUID `json:"document_id"`
	Title          string    `json:"title"`
	DocumentType   string    `json:"document_type"`
	RelevanceScore float64   `json:"relevance_score"`
}

type SessionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
