package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
	"votemap.tw/backend/internal/util/rekuest"
)

type FlipController struct {
	fx.In

	FlipService *service.Flip
}

func RegisterFlip(v1 *svr.V1, c FlipController) {
	v1.Post("/flips", c.AnalyzeFlips)
}

type FlipRequest struct {
	BaselineCategory string `json:"baselineCategory" validate:"required,electioncategory"`
	BaselineYear     int    `json:"baselineYear" validate:"required,min=1996"`

	ComparisonCategory string `json:"comparisonCategory" validate:"required,electioncategory"`
	ComparisonYear     int    `json:"comparisonYear" validate:"required,min=1996"`

	// Districts narrows the analysis; empty means the default scope of the
	// comparison category.
	Districts []string `json:"districts"`

	IncludeVillages bool `json:"includeVillages"`
}

func (c *FlipController) AnalyzeFlips(ctx *fiber.Ctx) error {
	var request FlipRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	summary, err := c.FlipService.Analyze(ctx.Context(),
		model.Dataset{Category: request.BaselineCategory, Year: request.BaselineYear},
		model.Dataset{Category: request.ComparisonCategory, Year: request.ComparisonYear},
		request.Districts,
		request.IncludeVillages,
	)
	if err != nil {
		return err
	}

	return ctx.JSON(summary)
}
