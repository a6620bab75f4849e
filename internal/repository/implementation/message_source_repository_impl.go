package implementation

import (
	"context"

	"legal-chat-be/internal/entity"
	"legal-chat-be/internal/mapper"
	"legal-chat-be/internal/model"
	"legal-chat-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageSourceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewMessageSourceRepository(db *gorm.DB) contract.MessageSourceRepository {
	return &MessageSourceRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *MessageSourceRepositoryImpl) CreateBatch(ctx context.Context, sources []*entity.MessageSource) error {
	if len(sources) == 0 {
		return nil
	}
	models := make([]*model.MessageSource, len(sources))
	for i, s := range sources {
		models[i] = r.mapper.MessageSourceToModel(s)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*sources[i] = *r.mapper.MessageSourceToEntity(m)
	}
	return nil
}

// FindByMessageIds loads all sources for the given messages with their documents
func (r *MessageSourceRepositoryImpl) FindByMessageIds(ctx context.Context, messageIds []uuid.UUID) ([]*entity.MessageSource, error) {
	if len(messageIds) == 0 {
		return []*entity.MessageSource{}, nil
	}

	var models []*model.MessageSource
	err := r.db.WithContext(ctx).
		Preload("Document").
		Where("message_id IN ?", messageIds).
		Find(&models).Error

	if err != nil {
		return nil, err
	}

	entities := make([]*entity.MessageSource, len(models))
	for i, m := range models {
		entities[i] = r.mapper.MessageSourceToEntity(m)
	}
	return entities, nil
}

func (r *MessageSourceRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	subQuery := r.db.Table("chat_messages").Select("id").Where("session_id = ?", sessionId)
	return r.db.WithContext(ctx).Where("message_id IN (?)", subQuery).Delete(&model.MessageSource{}).Error
}
