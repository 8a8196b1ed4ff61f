package v1

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/pkg/apierr"
	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
	"votemap.tw/backend/internal/util/rekuest"
)

type HistoryController struct {
	fx.In

	HistoryService *service.History
	TrendService   *service.Trend
}

func RegisterHistory(v1 *svr.V1, c HistoryController) {
	v1.Get("/villages/:geoKey/history/:category", c.GetHistory)
	v1.Get("/villages/:geoKey/rates/:category", c.GetRates)
}

type historyResponse struct {
	GeoKey   string                 `json:"geoKey"`
	Category string                 `json:"category"`
	Years    []*model.HistoryBucket `json:"years"`

	SwingCount int  `json:"swingCount"`
	Swing      bool `json:"swing"`
}

// GetHistory returns a village's per-year buckets for one category, by
// default blended with the reference category for charting continuity.
// Pass blended=false for the category's own years only.
func (c *HistoryController) GetHistory(ctx *fiber.Ctx) error {
	geoKey := ctx.Params("geoKey")
	category := ctx.Params("category")
	if err := rekuest.ValidCategory(ctx, category); err != nil {
		return err
	}
	blended := ctx.QueryBool("blended", true)

	series, err := c.HistoryService.GetSeries(ctx.Context(), geoKey, category, blended)
	if err != nil {
		return err
	}
	if series == nil {
		return apierr.ErrNotFound
	}

	years := make([]*model.HistoryBucket, 0, len(series))
	for _, bucket := range series {
		years = append(years, bucket)
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })

	count, swing := c.TrendService.SwingCount(series)

	return ctx.JSON(historyResponse{
		GeoKey:     geoKey,
		Category:   category,
		Years:      years,
		SwingCount: count,
		Swing:      swing,
	})
}

// GetRates returns the single-category rate table of one village.
func (c *HistoryController) GetRates(ctx *fiber.Ctx) error {
	geoKey := ctx.Params("geoKey")
	category := ctx.Params("category")
	if err := rekuest.ValidCategory(ctx, category); err != nil {
		return err
	}

	rows, err := c.TrendService.AnalyzeRates(ctx.Context(), geoKey, category)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return apierr.ErrNotFound
	}

	return ctx.JSON(rows)
}
