package meta

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"votemap.tw/backend/internal/model/cache"
	"votemap.tw/backend/internal/pkg/apierr"
	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
	"votemap.tw/backend/internal/util/rekuest"
)

type AdminController struct {
	fx.In

	ResultService  *service.Result
	HistoryService *service.History
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/purge", c.PurgeCache)

	admin.Get("/refresh/results/:category/:year", c.RefreshResultSet)
}

func adminDatasetParams(ctx *fiber.Ctx) (string, int, error) {
	category := ctx.Params("category")
	if err := rekuest.ValidCategory(ctx, category); err != nil {
		return "", 0, err
	}
	year, err := strconv.Atoi(ctx.Params("year"))
	if err != nil {
		return "", 0, apierr.ErrInvalidReq.Msg("invalid or missing year")
	}
	return category, year, nil
}

type PurgeCacheRequest struct {
	Name string      `json:"name" validate:"required"`
	Key  null.String `json:"key"`
}

func (c *AdminController) PurgeCache(ctx *fiber.Ctx) error {
	var request PurgeCacheRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	if err := cache.Delete(request.Name, request.Key); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// RefreshResultSet drops a dataset's cached aggregates and rebuilds them.
func (c *AdminController) RefreshResultSet(ctx *fiber.Ctx) error {
	category, year, err := adminDatasetParams(ctx)
	if err != nil {
		return err
	}

	if err := cache.ResultSets.Flush(); err != nil {
		return err
	}
	if err := cache.DistrictWinners.Flush(); err != nil {
		return err
	}
	if err := cache.HistoryStores.Flush(); err != nil {
		return err
	}
	if err := cache.GeoJSON.Flush(); err != nil {
		return err
	}

	if _, err := c.ResultService.GetResultSet(ctx.Context(), category, year); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusAccepted)
}
