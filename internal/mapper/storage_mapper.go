package mapper

import (
	"photofolio-be/internal/entity"
	"photofolio-be/internal/model"
)

type StorageMapper struct{}

func NewStorageMapper() *StorageMapper {
	return &StorageMapper{}
}

func (m *StorageMapper) AccountToEntity(mdl *model.StorageAccount) *entity.StorageAccount {
	if mdl == nil {
		return nil
	}
	return &entity.StorageAccount{
		Id:             mdl.Id,
		UserId:         mdl.UserId,
		Provider:       entity.StorageProvider(mdl.Provider),
		AccountEmail:   mdl.AccountEmail,
		AccessToken:    mdl.AccessToken,
		RefreshToken:   mdl.RefreshToken,
		TokenExpiresAt: mdl.TokenExpiresAt,
		CreatedAt:      mdl.CreatedAt,
		UpdatedAt:      mdl.UpdatedAt,
	}
}

func (m *StorageMapper) AccountToModel(e *entity.StorageAccount) *model.StorageAccount {
	if e == nil {
		return nil
	}
	return &model.StorageAccount{
		Id:             e.Id,
		UserId:         e.UserId,
		Provider:       string(e.Provider),
		AccountEmail:   e.AccountEmail,
		AccessToken:    e.AccessToken,
		RefreshToken:   e.RefreshToken,
		TokenExpiresAt: e.TokenExpiresAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *StorageMapper) AccountsToEntities(models []*model.StorageAccount) []*entity.StorageAccount {
	entities := make([]*entity.StorageAccount, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.AccountToEntity(mdl))
	}
	return entities
}

func (m *StorageMapper) GalleryToEntity(mdl *model.Gallery) *entity.Gallery {
	if mdl == nil {
		return nil
	}
	return &entity.Gallery{
		Id:               mdl.Id,
		UserId:           mdl.UserId,
		StorageAccountId: mdl.StorageAccountId,
		Title:            mdl.Title,
		Description:      mdl.Description,
		RemoteFolderId:   mdl.RemoteFolderId,
		CoverURL:         mdl.CoverURL,
		IsPublic:         mdl.IsPublic,
		SortOrder:        mdl.SortOrder,
		CreatedAt:        mdl.CreatedAt,
		UpdatedAt:        mdl.UpdatedAt,
	}
}

func (m *StorageMapper) GalleryToModel(e *entity.Gallery) *model.Gallery {
	if e == nil {
		return nil
	}
	return &model.Gallery{
		Id:               e.Id,
		UserId:           e.UserId,
		StorageAccountId: e.StorageAccountId,
		Title:            e.Title,
		Description:      e.Description,
		RemoteFolderId:   e.RemoteFolderId,
		CoverURL:         e.CoverURL,
		IsPublic:         e.IsPublic,
		SortOrder:        e.SortOrder,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func (m *StorageMapper) GalleriesToEntities(models []*model.Gallery) []*entity.Gallery {
	entities := make([]*entity.Gallery, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.GalleryToEntity(mdl))
	}
	return entities
}
