package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/pkg/apierr"
	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
)

type PopulationController struct {
	fx.In

	PopulationService *service.Population
}

func RegisterPopulation(v1 *svr.V1, c PopulationController) {
	v1.Get("/villages/:geoKey/population", c.GetPyramid)
}

func (c *PopulationController) GetPyramid(ctx *fiber.Ctx) error {
	rows, err := c.PopulationService.GetPyramid(ctx.Context(), ctx.Params("geoKey"))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return apierr.ErrNotFound
	}

	return ctx.JSON(rows)
}
