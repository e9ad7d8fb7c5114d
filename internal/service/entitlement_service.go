// FILE: internal/service/entitlement_service.go
package service

import (
	"context"
	"fmt"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/pkg/logger"
	"photofolio-be/internal/repository/memory"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"
	"photofolio-be/pkg/entitlement"

	"github.com/google/uuid"
)

// IEntitlementService resolves the effective feature set for a user:
// plan grants first, then per-user overrides on top. Superadmins bypass
// resolution and receive every active feature without limits.
type IEntitlementService interface {
	ResolveFeatures(ctx context.Context, userId uuid.UUID) (*dto.EntitlementsResponse, error)
	CanUse(ctx context.Context, userId uuid.UUID, featureKey string) (bool, error)
	GetLimit(ctx context.Context, userId uuid.UUID, featureKey string) (int, bool, error)
}

type entitlementService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.CatalogCache
	logger     logger.ILogger
}

func NewEntitlementService(uowFactory unitofwork.RepositoryFactory, cache *memory.CatalogCache, log logger.ILogger) IEntitlementService {
	return &entitlementService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     log,
	}
}

func (s *entitlementService) ResolveFeatures(ctx context.Context, userId uuid.UUID) (*dto.EntitlementsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entitlement.ErrUserNotFound
	}

	if user.Role == entity.UserRoleSuperadmin {
		features, err := s.activeFeatures(ctx, uow)
		if err != nil {
			return nil, err
		}
		return &dto.EntitlementsResponse{
			UserId:   user.Id,
			PlanSlug: string(user.Role),
			Features: entitlement.SuperadminAll(features),
		}, nil
	}

	plan, err := s.resolvePlan(ctx, uow, user)
	if err != nil {
		return nil, err
	}

	grants, err := s.planGrants(ctx, uow, plan)
	if err != nil {
		return nil, err
	}

	overrides, err := s.userOverrides(ctx, uow, user)
	if err != nil {
		return nil, err
	}

	return &dto.EntitlementsResponse{
		UserId:   user.Id,
		PlanSlug: plan.Slug,
		Features: entitlement.Overlay(entitlement.PlanBase(grants), overrides),
	}, nil
}

func (s *entitlementService) CanUse(ctx context.Context, userId uuid.UUID, featureKey string) (bool, error) {
	res, err := s.ResolveFeatures(ctx, userId)
	if err != nil {
		return false, err
	}
	return res.Features.CanUse(featureKey), nil
}

func (s *entitlementService) GetLimit(ctx context.Context, userId uuid.UUID, featureKey string) (int, bool, error) {
	res, err := s.ResolveFeatures(ctx, userId)
	if err != nil {
		return 0, false, err
	}
	limit, ok := res.Features.Limit(featureKey)
	return limit, ok, nil
}

// resolvePlan picks the user's assigned plan when it exists and is active,
// otherwise the free plan. A missing free plan is a configuration error
// surfaced as ErrPlanNotFound, never silently swallowed.
func (s *entitlementService) resolvePlan(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*entity.Plan, error) {
	if user.PlanId != nil {
		plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: *user.PlanId})
		if err != nil {
			return nil, err
		}
		if plan != nil && plan.IsActive {
			return plan, nil
		}
		s.logger.Warn("entitlement", "Assigned plan missing or inactive, falling back to free", map[string]interface{}{
			"user_id": user.Id.String(),
			"plan_id": user.PlanId.String(),
		})
	}

	free, err := uow.PlanRepository().FindBySlug(ctx, entity.FreePlanSlug)
	if err != nil {
		return nil, err
	}
	if free == nil {
		return nil, fmt.Errorf("free plan is not configured: %w", entitlement.ErrPlanNotFound)
	}
	return free, nil
}

func (s *entitlementService) planGrants(ctx context.Context, uow unitofwork.UnitOfWork, plan *entity.Plan) ([]*entity.PlanFeature, error) {
	if grants, ok := s.cache.GetGrants(plan.Id.String()); ok {
		return grants, nil
	}

	grants, err := uow.PlanRepository().FindGrants(ctx, plan.Id)
	if err != nil {
		return nil, err
	}

	s.cache.SetGrants(plan.Id.String(), grants)
	return grants, nil
}

func (s *entitlementService) activeFeatures(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Feature, error) {
	if features, ok := s.cache.GetFeatures(); ok {
		return features, nil
	}

	features, err := uow.FeatureRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	s.cache.SetFeatures(features)
	return features, nil
}

// userOverrides merges the legacy JSON blob on the user row with the
// audited override rows. Rows win on key collision; the blob only fills
// keys no row covers.
func (s *entitlementService) userOverrides(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (map[string]entitlement.Override, error) {
	rows, err := uow.OverrideRepository().FindByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	legacy := entitlement.ParseLegacyOverrides(user.FeatureOverrides)
	if legacy == nil && len(user.FeatureOverrides) > 0 {
		s.logger.Warn("entitlement", "Legacy override blob unreadable, treating as empty", map[string]interface{}{
			"user_id": user.Id.String(),
		})
	}

	return entitlement.MergeOverrideSources(legacy, entitlement.FromOverrideRows(rows)), nil
}
