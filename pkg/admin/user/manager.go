package user

import (
	"context"
	"fmt"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles user administration
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) GetAll(ctx context.Context, uow unitofwork.UnitOfWork, limit, offset int) ([]*entity.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
}

func (m *Manager) Get(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

// Update applies admin edits. Assigning a plan verifies the plan exists;
// clearing it drops the user back to the free plan at resolution time.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.AdminUpdateUserRequest) (*entity.User, error) {
	user, err := m.Get(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.Status != nil {
		user.Status = entity.UserStatus(*req.Status)
	}
	if req.PlanId != nil {
		plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: *req.PlanId})
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, fmt.Errorf("plan not found")
		}
		user.PlanId = &plan.Id
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	user, err := m.Get(ctx, uow, id)
	if err != nil {
		return err
	}
	return uow.UserRepository().Delete(ctx, user.Id)
}
