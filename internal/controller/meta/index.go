package meta

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/pkg/bininfo"
	"votemap.tw/backend/internal/service"
)

type IndexController struct {
	fx.In

	HealthService *service.Health
}

func RegisterIndex(app *fiber.App, c IndexController) {
	app.Get("/", c.Index)
	app.Get("/health", c.Health)
}

func (c *IndexController) Index(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"name":    "votemap-backend",
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *IndexController) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.Context()); err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{
		"status": "healthy",
	})
}
