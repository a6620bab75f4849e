package contract

import (
	"context"

	"legal-chat-be/internal/entity"

	"github.com/google/uuid"
)

type MessageSourceRepository interface {
	CreateBatch(ctx context.Context, sources []*entity.MessageSource) error
	FindByMessageIds(ctx context.Context, messageIds []uuid.UUID) ([]*entity.MessageSource, error)
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
}
