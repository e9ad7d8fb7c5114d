// FILE: internal/controller/oauth_controller.go
package controller

import (
	"photofolio-be/internal/config"
	"photofolio-be/internal/pkg/serverutils"
	"photofolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OAuthController interface {
	RegisterRoutes(api fiber.Router)
}

type oauthController struct {
	oauthService service.IOAuthService
	cfg          *config.Config
}

func NewOAuthController(oauthService service.IOAuthService, cfg *config.Config) OAuthController {
	return &oauthController{
		oauthService: oauthService,
		cfg:          cfg,
	}
}

func (c *oauthController) RegisterRoutes(api fiber.Router) {
	auth := api.Group("/auth")
	auth.Get("/:provider", c.Login)
	auth.Get("/:provider/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	url, err := c.oauthService.GetLoginURL(ctx.Params("provider"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Redirect(url)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing code"))
	}

	res, err := c.oauthService.HandleCallback(ctx.Context(), ctx.Params("provider"), code)
	if err != nil {
		return ctx.Redirect(c.cfg.App.ClientURL + "/login?oauth=failed")
	}

	// The SPA picks the token out of the fragment so it never hits server
	// logs on the frontend host.
	return ctx.Redirect(c.cfg.App.ClientURL + "/oauth/complete#token=" + res.AccessToken)
}
