// FILE: internal/controller/referral_controller.go
package controller

import (
	"photofolio-be/internal/pkg/serverutils"
	"photofolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReferralController interface {
	RegisterRoutes(api fiber.Router)
}

type referralController struct {
	referralService service.IReferralService
}

func NewReferralController(referralService service.IReferralService) ReferralController {
	return &referralController{
		referralService: referralService,
	}
}

func (c *referralController) RegisterRoutes(api fiber.Router) {
	referrals := api.Group("/referrals", serverutils.JwtMiddleware)
	referrals.Get("/summary", c.GetSummary)
	referrals.Get("/commissions", c.GetCommissions)
	referrals.Get("/qr", c.GetQRCode)
}

func (c *referralController) GetSummary(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.referralService.GetSummary(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Referral summary retrieved", res))
}

func (c *referralController) GetCommissions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.referralService.GetCommissions(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Commissions retrieved", res))
}

func (c *referralController) GetQRCode(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	png, err := c.referralService.GetQRCode(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(png)
}
