// FILE: internal/mapper/feature_mapper.go
// Mapper for Feature catalog and override entity <-> model conversion
package mapper

import (
	"photofolio-be/internal/entity"
	"photofolio-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(model *model.Feature) *entity.Feature {
	if model == nil {
		return nil
	}
	return &entity.Feature{
		Id:             model.Id,
		Key:            model.Key,
		Name:           model.Name,
		Description:    model.Description,
		Category:       model.Category,
		DefaultEnabled: model.DefaultEnabled,
		IsActive:       model.IsActive,
		SortOrder:      model.SortOrder,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func (m *FeatureMapper) ToModel(entity *entity.Feature) *model.Feature {
	if entity == nil {
		return nil
	}
	return &model.Feature{
		Id:             entity.Id,
		Key:            entity.Key,
		Name:           entity.Name,
		Description:    entity.Description,
		Category:       entity.Category,
		DefaultEnabled: entity.DefaultEnabled,
		IsActive:       entity.IsActive,
		SortOrder:      entity.SortOrder,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type OverrideMapper struct{}

func NewOverrideMapper() *OverrideMapper {
	return &OverrideMapper{}
}

func (m *OverrideMapper) ToEntity(mdl *model.FeatureOverride) *entity.FeatureOverride {
	if mdl == nil {
		return nil
	}
	e := &entity.FeatureOverride{
		Id:        mdl.Id,
		UserId:    mdl.UserId,
		FeatureId: mdl.FeatureId,
		Enabled:   mdl.Enabled,
		Limit:     mdl.Limit,
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
	if mdl.Feature != nil {
		e.FeatureKey = mdl.Feature.Key
	}
	return e
}

func (m *OverrideMapper) ToModel(e *entity.FeatureOverride) *model.FeatureOverride {
	if e == nil {
		return nil
	}
	return &model.FeatureOverride{
		Id:        e.Id,
		UserId:    e.UserId,
		FeatureId: e.FeatureId,
		Enabled:   e.Enabled,
		Limit:     e.Limit,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *OverrideMapper) ToEntities(models []*model.FeatureOverride) []*entity.FeatureOverride {
	entities := make([]*entity.FeatureOverride, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *OverrideMapper) LogToModel(e *entity.FeatureOverrideLog) *model.FeatureOverrideLog {
	if e == nil {
		return nil
	}
	return &model.FeatureOverrideLog{
		Id:         e.Id,
		UserId:     e.UserId,
		FeatureId:  e.FeatureId,
		FeatureKey: e.FeatureKey,
		AdminId:    e.AdminId,
		AdminEmail: e.AdminEmail,
		AdminRole:  e.AdminRole,
		Action:     e.Action,
		OldValue:   e.OldValue,
		NewValue:   e.NewValue,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *OverrideMapper) LogToEntity(mdl *model.FeatureOverrideLog) *entity.FeatureOverrideLog {
	if mdl == nil {
		return nil
	}
	return &entity.FeatureOverrideLog{
		Id:         mdl.Id,
		UserId:     mdl.UserId,
		FeatureId:  mdl.FeatureId,
		FeatureKey: mdl.FeatureKey,
		AdminId:    mdl.AdminId,
		AdminEmail: mdl.AdminEmail,
		AdminRole:  mdl.AdminRole,
		Action:     mdl.Action,
		OldValue:   mdl.OldValue,
		NewValue:   mdl.NewValue,
		CreatedAt:  mdl.CreatedAt,
	}
}
