package unitofwork

import (
	"context"

	"legal-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserProfileRepository() contract.UserProfileRepository
	DocumentRepository() contract.DocumentRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	MessageSourceRepository() contract.MessageSourceRepository
}
