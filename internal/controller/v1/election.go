package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
)

type ElectionController struct {
	fx.In

	ElectionService *service.Election
}

func RegisterElection(v1 *svr.V1, c ElectionController) {
	v1.Get("/datasets", c.GetDatasets)
}

func (c *ElectionController) GetDatasets(ctx *fiber.Ctx) error {
	datasets, err := c.ElectionService.ListDatasets(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(datasets)
}
