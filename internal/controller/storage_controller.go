// FILE: internal/controller/storage_controller.go
// OAuth connect flow for external storage providers. The callback route
// is public because the provider redirects the browser there; the user
// is recovered from the signed state parameter.
package controller

import (
	"photofolio-be/internal/config"
	"photofolio-be/internal/pkg/serverutils"
	"photofolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StorageController interface {
	RegisterRoutes(api fiber.Router)
}

type storageController struct {
	storageService service.IStorageService
	cfg            *config.Config
}

func NewStorageController(storageService service.IStorageService, cfg *config.Config) StorageController {
	return &storageController{
		storageService: storageService,
		cfg:            cfg,
	}
}

func (c *storageController) RegisterRoutes(api fiber.Router) {
	storage := api.Group("/storage")
	storage.Get("/accounts", serverutils.JwtMiddleware, c.ListAccounts)
	storage.Get("/:provider/connect", serverutils.JwtMiddleware, c.Connect)
	storage.Get("/:provider/callback", c.Callback)
	storage.Delete("/:provider", serverutils.JwtMiddleware, c.Disconnect)
}

func (c *storageController) ListAccounts(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.storageService.ListAccounts(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Storage accounts retrieved", res))
}

func (c *storageController) Connect(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	url, err := c.storageService.GetConnectURL(userId, ctx.Params("provider"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Authorization URL generated", fiber.Map{"url": url}))
}

func (c *storageController) Callback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	state := ctx.Query("state")
	if code == "" || state == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing code or state"))
	}

	_, err := c.storageService.HandleCallback(ctx.Context(), ctx.Params("provider"), code, state)
	if err != nil {
		return ctx.Redirect(c.cfg.App.ClientURL + "/settings/storage?connected=0")
	}

	return ctx.Redirect(c.cfg.App.ClientURL + "/settings/storage?connected=1")
}

func (c *storageController) Disconnect(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	if err := c.storageService.Disconnect(ctx.Context(), userId, ctx.Params("provider")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Storage account disconnected", nil))
}
