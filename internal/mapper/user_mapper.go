package mapper

import (
	"legal-chat-be/internal/entity"
	"legal-chat-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) UserProfileToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	return &entity.UserProfile{
		Id:             p.Id,
		OrganizationId: p.OrganizationId,
		Role:           p.Role,
		FullName:       deref(p.FullName),
		Email:          p.Email,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *UserMapper) UserProfileToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	return &model.UserProfile{
		Id:             p.Id,
		OrganizationId: p.OrganizationId,
		Role:           p.Role,
		FullName:       optional(p.FullName),
		Email:          p.Email,
		CreatedAt:      p.CreatedAt,
	}
}
