package v1

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model/cache"
	"votemap.tw/backend/internal/pkg/apierr"
	"votemap.tw/backend/internal/pkg/cachectrl"
	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
	"votemap.tw/backend/internal/util/rekuest"
)

type ResultController struct {
	fx.In

	ResultService *service.Result
}

func RegisterResult(v1 *svr.V1, c ResultController) {
	v1.Get("/results/:category/:year", c.GetResultSet)
	v1.Get("/results/:category/:year/districts", c.ListDistricts)
	v1.Get("/results/:category/:year/districts/:district", c.GetDistrict)
	v1.Get("/results/:category/:year/villages/:geoKey", c.GetVillage)
}

func datasetParams(ctx *fiber.Ctx) (string, int, error) {
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

func (c *ResultController) GetResultSet(ctx *fiber.Ctx) error {
	category, year, err := datasetParams(ctx)
	if err != nil {
		return err
	}

	set, err := c.ResultService.GetResultSet(ctx.Context(), category, year)
	if err != nil {
		return err
	}

	key := category + constant.CacheSep + strconv.Itoa(year)
	var lastModifiedTime time.Time
	if err := cache.LastModifiedTime.Get("[resultSet#category|year:"+key+"]", &lastModifiedTime); err != nil {
		lastModifiedTime = time.Now()
	}
	cachectrl.OptIn(ctx, lastModifiedTime)

	return ctx.JSON(set)
}

func (c *ResultController) ListDistricts(ctx *fiber.Ctx) error {
	category, year, err := datasetParams(ctx)
	if err != nil {
		return err
	}

	districts, err := c.ResultService.ListDistricts(ctx.Context(), category, year, ctx.Query("q"))
	if err != nil {
		return err
	}

	return ctx.JSON(districts)
}

func (c *ResultController) GetDistrict(ctx *fiber.Ctx) error {
	category, year, err := datasetParams(ctx)
	if err != nil {
		return err
	}

	district, err := c.ResultService.GetDistrictResult(ctx.Context(), category, year, ctx.Params("district"))
	if err != nil {
		return err
	}

	return ctx.JSON(district)
}

func (c *ResultController) GetVillage(ctx *fiber.Ctx) error {
	category, year, err := datasetParams(ctx)
	if err != nil {
		return err
	}

	village, err := c.ResultService.GetVillageResult(ctx.Context(), category, year, ctx.Params("geoKey"))
	if err != nil {
		return err
	}

	return ctx.JSON(village)
}
