// FILE: internal/controller/payment_controller.go
package controller

import (
	"photofolio-be/internal/dto"
	"photofolio-be/internal/pkg/serverutils"
	"photofolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PaymentController interface {
	RegisterRoutes(api fiber.Router)
}

type paymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) PaymentController {
	return &paymentController{
		paymentService: paymentService,
	}
}

func (c *paymentController) RegisterRoutes(api fiber.Router) {
	billing := api.Group("/billing")
	billing.Post("/checkout", serverutils.JwtMiddleware, c.CreateCheckout)
	// Stripe calls this route directly. Authentication is the signature
	// header, not a JWT.
	billing.Post("/webhook", c.HandleWebhook)
}

func (c *paymentController) CreateCheckout(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.CreateCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.paymentService.CreateCheckout(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkout session created", res))
}

func (c *paymentController) HandleWebhook(ctx *fiber.Ctx) error {
	payload := ctx.Body()
	signature := ctx.Get("Stripe-Signature")

	if err := c.paymentService.HandleWebhook(ctx.Context(), payload, signature); err != nil {
		// Stripe retries on non-2xx, which is what we want for transient
		// failures. Signature failures also land here.
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Webhook processed", nil))
}
