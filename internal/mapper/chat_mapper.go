package mapper

import (
	"time"

	"legal-chat-be/internal/entity"
	"legal-chat-be/internal/model"
)

type ChatMapper struct {
	documentMapper *DocumentMapper
}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{
		documentMapper: NewDocumentMapper(),
	}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatSession{
		Id:             s.Id,
		UserId:         s.UserId,
		OrganizationId: s.OrganizationId,
		Title:          s.Title,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.ChatSession{
		Id:             s.Id,
		UserId:         s.UserId,
		OrganizationId: s.OrganizationId,
		Title:          s.Title,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

// Source Mappers

func (m *ChatMapper) MessageSourceToEntity(s *model.MessageSource) *entity.MessageSource {
	if s == nil {
		return nil
	}

	return &entity.MessageSource{
		Id:             s.Id,
		MessageId:      s.MessageId,
		DocumentId:     s.DocumentId,
		RelevanceScore: s.RelevanceScore,
		CreatedAt:      s.CreatedAt,
		Document:       m.documentMapper.ToEntity(s.Document),
	}
}

func (m *ChatMapper) MessageSourceToModel(s *entity.MessageSource) *model.MessageSource {
	if s == nil {
		return nil
	}

	return &model.MessageSource{
		Id:             s.Id,
		MessageId:      s.MessageId,
		DocumentId:     s.DocumentId,
		RelevanceScore: s.RelevanceScore,
		CreatedAt:      s.CreatedAt,
	}
}
