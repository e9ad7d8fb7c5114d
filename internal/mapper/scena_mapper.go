package mapper

import (
	"photofolio-be/internal/entity"
	"photofolio-be/internal/model"
)

type ScenaMapper struct{}

func NewScenaMapper() *ScenaMapper {
	return &ScenaMapper{}
}

func (m *ScenaMapper) ProjectToEntity(mdl *model.ScenaProject) *entity.ScenaProject {
	if mdl == nil {
		return nil
	}
	e := &entity.ScenaProject{
		Id:         mdl.Id,
		OwnerId:    mdl.OwnerId,
		Title:      mdl.Title,
		ClientName: mdl.ClientName,
		Status:     mdl.Status,
		CreatedAt:  mdl.CreatedAt,
		UpdatedAt:  mdl.UpdatedAt,
	}
	for _, c := range mdl.Cards {
		e.Cards = append(e.Cards, m.CardToEntity(c))
	}
	return e
}

func (m *ScenaMapper) ProjectToModel(e *entity.ScenaProject) *model.ScenaProject {
	if e == nil {
		return nil
	}
	return &model.ScenaProject{
		Id:         e.Id,
		OwnerId:    e.OwnerId,
		Title:      e.Title,
		ClientName: e.ClientName,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (m *ScenaMapper) ProjectsToEntities(models []*model.ScenaProject) []*entity.ScenaProject {
	entities := make([]*entity.ScenaProject, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ProjectToEntity(mdl))
	}
	return entities
}

func (m *ScenaMapper) CardToEntity(mdl *model.ScenaCard) *entity.ScenaCard {
	if mdl == nil {
		return nil
	}
	return &entity.ScenaCard{
		Id:        mdl.Id,
		ProjectId: mdl.ProjectId,
		Column:    entity.ScenaColumn(mdl.Column),
		Title:     mdl.Title,
		Body:      mdl.Body,
		SortOrder: mdl.SortOrder,
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
}

func (m *ScenaMapper) CardToModel(e *entity.ScenaCard) *model.ScenaCard {
	if e == nil {
		return nil
	}
	return &model.ScenaCard{
		Id:        e.Id,
		ProjectId: e.ProjectId,
		Column:    string(e.Column),
		Title:     e.Title,
		Body:      e.Body,
		SortOrder: e.SortOrder,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *ScenaMapper) CardsToEntities(models []*model.ScenaCard) []*entity.ScenaCard {
	entities := make([]*entity.ScenaCard, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.CardToEntity(mdl))
	}
	return entities
}
