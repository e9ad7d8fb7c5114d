package mapper

import (
	"photofolio-be/internal/entity"
	"photofolio-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(mdl *model.Plan) *entity.Plan {
	if mdl == nil {
		return nil
	}
	e := &entity.Plan{
		Id:            mdl.Id,
		Name:          mdl.Name,
		Slug:          mdl.Slug,
		Description:   mdl.Description,
		Tagline:       mdl.Tagline,
		Price:         mdl.Price,
		BillingPeriod: entity.BillingPeriod(mdl.BillingPeriod),
		StripePriceId: mdl.StripePriceId,
		IsMostPopular: mdl.IsMostPopular,
		IsActive:      mdl.IsActive,
		SortOrder:     mdl.SortOrder,
		CreatedAt:     mdl.CreatedAt,
		UpdatedAt:     mdl.UpdatedAt,
	}
	for _, g := range mdl.Grants {
		e.Grants = append(e.Grants, m.GrantToEntity(g))
	}
	return e
}

func (m *PlanMapper) ToModel(e *entity.Plan) *model.Plan {
	if e == nil {
		return nil
	}
	return &model.Plan{
		Id:            e.Id,
		Name:          e.Name,
		Slug:          e.Slug,
		Description:   e.Description,
		Tagline:       e.Tagline,
		Price:         e.Price,
		BillingPeriod: string(e.BillingPeriod),
		StripePriceId: e.StripePriceId,
		IsMostPopular: e.IsMostPopular,
		IsActive:      e.IsActive,
		SortOrder:     e.SortOrder,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (m *PlanMapper) ToEntities(models []*model.Plan) []*entity.Plan {
	entities := make([]*entity.Plan, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *PlanMapper) GrantToEntity(mdl *model.PlanFeature) *entity.PlanFeature {
	if mdl == nil {
		return nil
	}
	e := &entity.PlanFeature{
		PlanId:    mdl.PlanId,
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

func (m *PlanMapper) GrantToModel(e *entity.PlanFeature) *model.PlanFeature {
	if e == nil {
		return nil
	}
	return &model.PlanFeature{
		PlanId:    e.PlanId,
		FeatureId: e.FeatureId,
		Enabled:   e.Enabled,
		Limit:     e.Limit,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *PlanMapper) GrantsToEntities(models []*model.PlanFeature) []*entity.PlanFeature {
	entities := make([]*entity.PlanFeature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.GrantToEntity(mdl))
	}
	return entities
}
