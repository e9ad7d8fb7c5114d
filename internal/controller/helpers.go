package controller

import (
	"errors"

	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"
	overrideMgr "photofolio-be/pkg/admin/override"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserId reads the authenticated user id set by the JWT middleware.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw := ctx.Locals("user_id")
	if raw == nil {
		return uuid.Nil, errors.New("unauthorized")
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("unauthorized")
	}
	userId, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, errors.New("unauthorized")
	}
	return userId, nil
}

// currentAdmin loads the acting admin's identity for audit records.
func currentAdmin(ctx *fiber.Ctx, uowFactory unitofwork.RepositoryFactory) (overrideMgr.Admin, error) {
	adminId, err := currentUserId(ctx)
	if err != nil {
		return overrideMgr.Admin{}, err
	}

	uow := uowFactory.NewUnitOfWork(ctx.Context())
	user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByID{ID: adminId})
	if err != nil {
		return overrideMgr.Admin{}, err
	}
	if user == nil {
		return overrideMgr.Admin{}, errors.New("unauthorized")
	}

	return overrideMgr.Admin{
		Id:    user.Id,
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}
