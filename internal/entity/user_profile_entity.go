package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile mirrors the identity provider's subject. OrganizationId is nil
// for users not yet assigned to a tenant; such users cannot query.
type UserProfile struct {
	Id             uuid.UUID
	OrganizationId *uuid.UUID
	Role           string // admin, user
	FullName       string
	Email          string
	CreatedAt      time.Time
}
