// FILE: internal/service/user_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	GetPublicProfile(ctx context.Context, userId uuid.UUID) (*dto.PublicProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	planSlug := entity.FreePlanSlug
	if user.PlanId != nil {
		plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: *user.PlanId})
		if err != nil {
			return nil, err
		}
		if plan != nil {
			planSlug = plan.Slug
		}
	}

	return &dto.UserProfileResponse{
		Id:         user.Id,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       string(user.Role),
		StudioName: user.StudioName,
		Bio:        user.Bio,
		AvatarURL:  user.AvatarURL,
		PlanSlug:   planSlug,
	}, nil
}

func (s *userService) GetPublicProfile(ctx context.Context, userId uuid.UUID) (*dto.PublicProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	planSlug := entity.FreePlanSlug
	if user.PlanId != nil {
		plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: *user.PlanId})
		if err != nil {
			return nil, err
		}
		if plan != nil {
			planSlug = plan.Slug
		}
	}

	return &dto.PublicProfileResponse{
		Id:         user.Id,
		FullName:   user.FullName,
		StudioName: user.StudioName,
		Bio:        user.Bio,
		AvatarURL:  user.AvatarURL,
		PlanSlug:   planSlug,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	repo := uow.UserRepository()
	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.StudioName != nil {
		user.StudioName = req.StudioName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	user.UpdatedAt = time.Now()

	return repo.Update(ctx, user)
}

func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	return uow.UserRepository().Delete(ctx, user.Id)
}
