// FILE: internal/service/plan_service.go
// Public plan listing for the pricing page
package service

import (
	"context"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/repository/unitofwork"
)

type PlanService interface {
	GetAllActivePlans(ctx context.Context) ([]*dto.PlanResponse, error)
	GetPlanBySlug(ctx context.Context, slug string) (*dto.PlanResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory) PlanService {
	return &planService{
		uowFactory: uowFactory,
	}
}

func (s *planService) GetAllActivePlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.PlanRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		if !plan.IsActive {
			continue
		}
		result = append(result, planToResponse(plan))
	}

	return result, nil
}

func (s *planService) GetPlanBySlug(ctx context.Context, slug string) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}

	return planToResponse(plan), nil
}
