// FILE: internal/service/admin_service.go
// Admin surface: user administration, catalog management and audited
// per-user overrides. Catalog writes invalidate the in-process cache and
// are announced on the event bus.
package service

import (
	"context"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/pkg/logger"
	"photofolio-be/internal/repository/unitofwork"
	adminEvents "photofolio-be/pkg/admin/events"
	featureMgr "photofolio-be/pkg/admin/feature"
	overrideMgr "photofolio-be/pkg/admin/override"
	planMgr "photofolio-be/pkg/admin/plan"
	userMgr "photofolio-be/pkg/admin/user"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IAdminService interface {
	// Users
	ListUsers(ctx context.Context, limit, offset int) ([]*dto.AdminUserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.AdminUserResponse, error)
	UpdateUser(ctx context.Context, admin overrideMgr.Admin, id uuid.UUID, req dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// Feature catalog
	ListFeatures(ctx context.Context) ([]*dto.FeatureResponse, error)
	CreateFeature(ctx context.Context, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	UpdateFeature(ctx context.Context, id uuid.UUID, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	DeleteFeature(ctx context.Context, id uuid.UUID) error

	// Plan catalog
	ListPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
	SetGrant(ctx context.Context, planId uuid.UUID, req dto.SetGrantRequest) (*dto.PlanGrantResponse, error)
	RemoveGrant(ctx context.Context, planId, featureId uuid.UUID) error

	// Overrides
	GetOverrides(ctx context.Context, userId uuid.UUID) ([]*dto.OverrideResponse, error)
	SetOverride(ctx context.Context, admin overrideMgr.Admin, userId uuid.UUID, req dto.SetOverrideRequest) (*dto.OverrideResponse, error)
	ClearOverride(ctx context.Context, admin overrideMgr.Admin, userId, featureId uuid.UUID) error
	GetOverrideLog(ctx context.Context, userId uuid.UUID) ([]*dto.OverrideLogResponse, error)

	// System logs
	GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
	GetSystemLogById(ctx context.Context, id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	features   *featureMgr.Manager
	plans      *planMgr.Manager
	overrides  *overrideMgr.Manager
	users      *userMgr.Manager
	publisher  adminEvents.Publisher
	pubSub     *gochannel.GoChannel
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	publisher adminEvents.Publisher,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		features:   featureMgr.NewManager(),
		plans:      planMgr.NewManager(),
		overrides:  overrideMgr.NewManager(),
		users:      userMgr.NewManager(),
		publisher:  publisher,
		pubSub:     pubSub,
		logger:     log,
	}
}

func (s *adminService) invalidateCatalog(reason string) {
	if s.pubSub != nil {
		PublishCatalogInvalidate(s.pubSub, reason)
	}
}

// --- Users ---

func (s *adminService) ListUsers(ctx context.Context, limit, offset int) ([]*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := s.users.GetAll(ctx, uow, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, adminUserToResponse(u))
	}
	return result, nil
}

func (s *adminService) GetUser(ctx context.Context, id uuid.UUID) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.users.Get(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return adminUserToResponse(user), nil
}

func (s *adminService) UpdateUser(ctx context.Context, admin overrideMgr.Admin, id uuid.UUID, req dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.users.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}

	if req.PlanId != nil {
		s.publisher.PublishUserPlanChanged(ctx, user.Id, user.PlanId, admin.Email)
	}

	return adminUserToResponse(user), nil
}

func (s *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.users.Delete(ctx, uow, id)
}

// --- Feature catalog ---

func (s *adminService) ListFeatures(ctx context.Context) ([]*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	features, err := s.features.GetAll(ctx, uow)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		result = append(result, featureToResponse(f))
	}
	return result, nil
}

func (s *adminService) CreateFeature(ctx context.Context, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := s.features.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog("feature_created")
	s.publisher.PublishCatalogChanged(ctx, "feature", feature.Id, "created")
	return featureToResponse(feature), nil
}

func (s *adminService) UpdateFeature(ctx context.Context, id uuid.UUID, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := s.features.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog("feature_updated")
	s.publisher.PublishCatalogChanged(ctx, "feature", feature.Id, "updated")
	return featureToResponse(feature), nil
}

func (s *adminService) DeleteFeature(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.features.Delete(ctx, uow, id); err != nil {
		return err
	}

	s.invalidateCatalog("feature_deleted")
	s.publisher.PublishCatalogChanged(ctx, "feature", id, "deleted")
	return nil
}

// --- Plan catalog ---

func (s *adminService) ListPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := s.plans.GetAll(ctx, uow)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, planToResponse(p))
	}
	return result, nil
}

func (s *adminService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := s.plans.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog("plan_created")
	s.publisher.PublishCatalogChanged(ctx, "plan", plan.Id, "created")
	return planToResponse(plan), nil
}

func (s *adminService) UpdatePlan(ctx context.Context, id uuid.UUID, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := s.plans.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog("plan_updated")
	s.publisher.PublishCatalogChanged(ctx, "plan", plan.Id, "updated")
	return planToResponse(plan), nil
}

func (s *adminService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.plans.Delete(ctx, uow, id); err != nil {
		return err
	}

	s.invalidateCatalog("plan_deleted")
	s.publisher.PublishCatalogChanged(ctx, "plan", id, "deleted")
	return nil
}

func (s *adminService) SetGrant(ctx context.Context, planId uuid.UUID, req dto.SetGrantRequest) (*dto.PlanGrantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	grant, err := s.plans.SetGrant(ctx, uow, planId, req)
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog("grant_set")
	s.publisher.PublishCatalogChanged(ctx, "plan", planId, "grant_set")

	return &dto.PlanGrantResponse{
		FeatureId:  grant.FeatureId,
		FeatureKey: grant.FeatureKey,
		Enabled:    grant.Enabled,
		Limit:      grant.Limit,
	}, nil
}

func (s *adminService) RemoveGrant(ctx context.Context, planId, featureId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.plans.RemoveGrant(ctx, uow, planId, featureId); err != nil {
		return err
	}

	s.invalidateCatalog("grant_removed")
	s.publisher.PublishCatalogChanged(ctx, "plan", planId, "grant_removed")
	return nil
}

// --- Overrides ---

func (s *adminService) GetOverrides(ctx context.Context, userId uuid.UUID) ([]*dto.OverrideResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	overrides, err := s.overrides.GetForUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		result = append(result, overrideToResponse(o))
	}
	return result, nil
}

// SetOverride writes the override and its audit record in one
// transaction so the log never drifts from the rows.
func (s *adminService) SetOverride(ctx context.Context, admin overrideMgr.Admin, userId uuid.UUID, req dto.SetOverrideRequest) (*dto.OverrideResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	override, err := s.overrides.Set(ctx, uow, admin, userId, req)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisher.PublishOverrideChanged(ctx, userId, override.FeatureId, override.FeatureKey, "set", admin.Email)
	return overrideToResponse(override), nil
}

func (s *adminService) ClearOverride(ctx context.Context, admin overrideMgr.Admin, userId, featureId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.overrides.Clear(ctx, uow, admin, userId, featureId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisher.PublishOverrideChanged(ctx, userId, featureId, "", "clear", admin.Email)
	return nil
}

func (s *adminService) GetOverrideLog(ctx context.Context, userId uuid.UUID) ([]*dto.OverrideLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := s.overrides.GetLog(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.OverrideLogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, &dto.OverrideLogResponse{
			Id:         l.Id,
			UserId:     l.UserId,
			FeatureKey: l.FeatureKey,
			AdminEmail: l.AdminEmail,
			AdminRole:  l.AdminRole,
			Action:     l.Action,
			OldValue:   l.OldValue,
			NewValue:   l.NewValue,
			CreatedAt:  l.CreatedAt,
		})
	}
	return result, nil
}

// --- System logs ---

func (s *adminService) GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.logger.GetLogs(level, limit, offset)
}

func (s *adminService) GetSystemLogById(ctx context.Context, id string) (*logger.LogEntry, error) {
	return s.logger.GetLogById(id)
}

// --- mapping helpers ---

func adminUserToResponse(u *entity.User) *dto.AdminUserResponse {
	return &dto.AdminUserResponse{
		Id:            u.Id,
		Email:         u.Email,
		FullName:      u.FullName,
		Role:          string(u.Role),
		Status:        string(u.Status),
		PlanId:        u.PlanId,
		ReferralCode:  u.ReferralCode,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

func featureToResponse(f *entity.Feature) *dto.FeatureResponse {
	return &dto.FeatureResponse{
		Id:             f.Id,
		Key:            f.Key,
		Name:           f.Name,
		Description:    f.Description,
		Category:       f.Category,
		DefaultEnabled: f.DefaultEnabled,
		IsActive:       f.IsActive,
		SortOrder:      f.SortOrder,
	}
}

func planToResponse(p *entity.Plan) *dto.PlanResponse {
	res := &dto.PlanResponse{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Tagline:       p.Tagline,
		Price:         p.Price,
		BillingPeriod: string(p.BillingPeriod),
		IsMostPopular: p.IsMostPopular,
		IsActive:      p.IsActive,
		SortOrder:     p.SortOrder,
	}
	for _, g := range p.Grants {
		res.Grants = append(res.Grants, &dto.PlanGrantResponse{
			FeatureId:  g.FeatureId,
			FeatureKey: g.FeatureKey,
			Enabled:    g.Enabled,
			Limit:      g.Limit,
		})
	}
	return res
}

func overrideToResponse(o *entity.FeatureOverride) *dto.OverrideResponse {
	return &dto.OverrideResponse{
		Id:         o.Id,
		UserId:     o.UserId,
		FeatureId:  o.FeatureId,
		FeatureKey: o.FeatureKey,
		Enabled:    o.Enabled,
		Limit:      o.Limit,
		UpdatedAt:  o.UpdatedAt,
	}
}
