package v1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
)

type ExportController struct {
	fx.In

	ExportService *service.Export
}

func RegisterExport(v1 *svr.V1, c ExportController) {
	v1.Get("/export/:category/:year/csv", c.ExportCSV)
	v1.Get("/export/annotations/kml", c.ExportKML)
}

func (c *ExportController) ExportCSV(ctx *fiber.Ctx) error {
	category, year, err := datasetParams(ctx)
	if err != nil {
		return err
	}

	body, err := c.ExportService.ExportCSV(ctx.Context(), category, year)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="votemap-%s-%d.csv"`, category, year))
	return ctx.Send(body)
}

func (c *ExportController) ExportKML(ctx *fiber.Ctx) error {
	body, err := c.ExportService.ExportKML(ctx.Context())
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.google-earth.kml+xml")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="votemap-annotations.kml"`)
	return ctx.Send(body)
}
