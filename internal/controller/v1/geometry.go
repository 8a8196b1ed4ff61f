package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
)

type GeometryController struct {
	fx.In

	GeometryService *service.Geometry
}

func RegisterGeometry(v1 *svr.V1, c GeometryController) {
	v1.Get("/geojson/:category/:year", c.GetStyledGeoJSON)
}

func (c *GeometryController) GetStyledGeoJSON(ctx *fiber.Ctx) error {
	category, year, err := datasetParams(ctx)
	if err != nil {
		return err
	}

	body, err := c.GeometryService.GetStyledGeoJSON(ctx.Context(), category, year)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/geo+json")
	return ctx.Send(body)
}
