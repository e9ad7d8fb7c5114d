// FILE: internal/controller/entitlement_controller.go
// Exposes the resolved feature set to the frontend.
package controller

import (
	"errors"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/pkg/serverutils"
	"photofolio-be/internal/service"
	"photofolio-be/pkg/entitlement"

	"github.com/gofiber/fiber/v2"
)

type EntitlementController interface {
	RegisterRoutes(api fiber.Router)
}

type entitlementController struct {
	entitlementService service.IEntitlementService
}

func NewEntitlementController(entitlementService service.IEntitlementService) EntitlementController {
	return &entitlementController{
		entitlementService: entitlementService,
	}
}

func (c *entitlementController) RegisterRoutes(api fiber.Router) {
	user := api.Group("/user", serverutils.JwtMiddleware)
	user.Get("/entitlements", c.GetEntitlements)
	user.Get("/entitlements/:key", c.CheckFeature)
}

func (c *entitlementController) GetEntitlements(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.entitlementService.ResolveFeatures(ctx.Context(), userId)
	if err != nil {
		return entitlementError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Entitlements resolved", res))
}

func (c *entitlementController) CheckFeature(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	key := ctx.Params("key")
	res, err := c.entitlementService.ResolveFeatures(ctx.Context(), userId)
	if err != nil {
		return entitlementError(ctx, err)
	}

	limit, hasLimit := res.Features.Limit(key)
	check := dto.FeatureCheckResponse{
		Key:      key,
		Enabled:  res.Features.CanUse(key),
		HasLimit: hasLimit,
	}
	if hasLimit {
		check.Limit = &limit
	}

	return ctx.JSON(serverutils.SuccessResponse("Feature checked", check))
}

// entitlementError maps resolver sentinels onto HTTP statuses. A missing
// free plan is a server misconfiguration, not a client error.
func entitlementError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entitlement.ErrUserNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "User not found"))
	case errors.Is(err, entitlement.ErrPlanNotFound):
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Plan catalog misconfigured"))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
}
