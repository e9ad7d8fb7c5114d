package mapper

import (
	"photofolio-be/internal/entity"
	"photofolio-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(mdl *model.User) *entity.User {
	if mdl == nil {
		return nil
	}
	return &entity.User{
		Id:               mdl.Id,
		Email:            mdl.Email,
		PasswordHash:     mdl.PasswordHash,
		FullName:         mdl.FullName,
		Role:             entity.UserRole(mdl.Role),
		Status:           entity.UserStatus(mdl.Status),
		PlanId:           mdl.PlanId,
		FeatureOverrides: []byte(mdl.FeatureOverrides),
		StudioName:       mdl.StudioName,
		Bio:              mdl.Bio,
		AvatarURL:        mdl.AvatarURL,
		ReferralCode:     mdl.ReferralCode,
		ReferredBy:       mdl.ReferredBy,
		EmailVerified:    mdl.EmailVerified,
		CreatedAt:        mdl.CreatedAt,
		UpdatedAt:        mdl.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		Id:               e.Id,
		Email:            e.Email,
		PasswordHash:     e.PasswordHash,
		FullName:         e.FullName,
		Role:             string(e.Role),
		Status:           string(e.Status),
		PlanId:           e.PlanId,
		FeatureOverrides: datatypes.JSON(e.FeatureOverrides),
		StudioName:       e.StudioName,
		Bio:              e.Bio,
		AvatarURL:        e.AvatarURL,
		ReferralCode:     e.ReferralCode,
		ReferredBy:       e.ReferredBy,
		EmailVerified:    e.EmailVerified,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *UserMapper) TokenToEntity(mdl *model.UserRefreshToken) *entity.UserRefreshToken {
	if mdl == nil {
		return nil
	}
	return &entity.UserRefreshToken{
		Id:        mdl.Id,
		UserId:    mdl.UserId,
		TokenHash: mdl.TokenHash,
		ExpiresAt: mdl.ExpiresAt,
		Revoked:   mdl.Revoked,
		IpAddress: mdl.IpAddress,
		UserAgent: mdl.UserAgent,
		CreatedAt: mdl.CreatedAt,
	}
}

func (m *UserMapper) ProviderToModel(e *entity.UserProvider) *model.UserProvider {
	if e == nil {
		return nil
	}
	return &model.UserProvider{
		Id:             e.Id,
		UserId:         e.UserId,
		ProviderName:   e.ProviderName,
		ProviderUserId: e.ProviderUserId,
		AvatarURL:      e.AvatarURL,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *UserMapper) TokenToModel(e *entity.UserRefreshToken) *model.UserRefreshToken {
	if e == nil {
		return nil
	}
	return &model.UserRefreshToken{
		Id:        e.Id,
		UserId:    e.UserId,
		TokenHash: e.TokenHash,
		ExpiresAt: e.ExpiresAt,
		Revoked:   e.Revoked,
		IpAddress: e.IpAddress,
		UserAgent: e.UserAgent,
		CreatedAt: e.CreatedAt,
	}
}
