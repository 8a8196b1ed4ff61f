package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
	"votemap.tw/backend/internal/util/rekuest"
)

type CompareController struct {
	fx.In

	CompareService *service.Compare
}

func RegisterCompare(v1 *svr.V1, c CompareController) {
	v1.Post("/compare", c.Compare)
}

type CompareRequest struct {
	Category string `json:"category" validate:"required,electioncategory"`
	Year1    int    `json:"year1" validate:"required,min=1996"`
	Year2    int    `json:"year2" validate:"required,min=1996"`

	// District narrows the tally to one district; empty compares the whole
	// dataset.
	District string `json:"district"`
}

func (c *CompareController) Compare(ctx *fiber.Ctx) error {
	var request CompareRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	result, err := c.CompareService.Compare(ctx.Context(), request.Category, request.Year1, request.Year2, request.District)
	if err != nil {
		return err
	}

	return ctx.JSON(result)
}
