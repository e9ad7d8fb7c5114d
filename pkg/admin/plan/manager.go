package plan

import (
	"context"
	"fmt"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles plan catalog and grant operations
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) GetAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Plan, error) {
	return uow.PlanRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order"})
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreatePlanRequest) (*entity.Plan, error) {
	existing, err := uow.PlanRepository().FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("plan with slug '%s' already exists", req.Slug)
	}

	plan := &entity.Plan{
		Id:            uuid.New(),
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Tagline:       req.Tagline,
		Price:         req.Price,
		BillingPeriod: entity.BillingPeriod(req.BillingPeriod),
		StripePriceId: req.StripePriceId,
		IsMostPopular: req.IsMostPopular,
		IsActive:      req.IsActive,
		SortOrder:     req.SortOrder,
	}

	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// Update modifies a plan. The slug is immutable: the free plan lookup and
// Stripe metadata depend on it staying put.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdatePlanRequest) (*entity.Plan, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("plan not found")
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Tagline != nil {
		plan.Tagline = *req.Tagline
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.StripePriceId != nil {
		plan.StripePriceId = *req.StripePriceId
	}
	if req.IsMostPopular != nil {
		plan.IsMostPopular = *req.IsMostPopular
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		plan.SortOrder = *req.SortOrder
	}

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// Delete deactivates rather than removes: users still point at the plan
// row and resolution falls back to free for inactive plans.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("plan not found")
	}
	if plan.Slug == entity.FreePlanSlug {
		return fmt.Errorf("the free plan cannot be deleted")
	}

	plan.IsActive = false
	return uow.PlanRepository().Update(ctx, plan)
}

// SetGrant assigns or updates one feature grant on a plan.
func (m *Manager) SetGrant(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID, req dto.SetGrantRequest) (*entity.PlanFeature, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("plan not found")
	}

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: req.FeatureId})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, fmt.Errorf("feature not found")
	}

	grant := &entity.PlanFeature{
		PlanId:     planId,
		FeatureId:  feature.Id,
		FeatureKey: feature.Key,
		Enabled:    req.Enabled,
		Limit:      req.Limit,
	}

	if err := uow.PlanRepository().UpsertGrant(ctx, grant); err != nil {
		return nil, err
	}

	return grant, nil
}

func (m *Manager) RemoveGrant(ctx context.Context, uow unitofwork.UnitOfWork, planId, featureId uuid.UUID) error {
	return uow.PlanRepository().DeleteGrant(ctx, planId, featureId)
}
