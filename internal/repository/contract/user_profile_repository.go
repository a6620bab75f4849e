package contract

import (
	"context"

	"legal-chat-be/internal/entity"
	"legal-chat-be/internal/repository/specification"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error)
}
