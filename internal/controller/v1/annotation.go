package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/server/svr"
	"votemap.tw/backend/internal/service"
	"votemap.tw/backend/internal/util/rekuest"
)

type AnnotationController struct {
	fx.In

	AnnotationService *service.Annotation
}

func RegisterAnnotation(v1 *svr.V1, c AnnotationController) {
	v1.Get("/annotations", c.GetAnnotations)
	v1.Post("/annotations", c.CreateAnnotation)
	v1.Put("/annotations/:annotationId", c.UpdateAnnotation)
	v1.Delete("/annotations/:annotationId", c.DeleteAnnotation)
}

type CreateAnnotationRequest struct {
	GeoKey string `json:"geoKey" validate:"required"`
	Name   string `json:"name" validate:"required,max=200"`
	Note   string `json:"note" validate:"max=2000"`

	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

type UpdateAnnotationRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Note string `json:"note" validate:"max=2000"`
}

func (c *AnnotationController) GetAnnotations(ctx *fiber.Ctx) error {
	annotations, err := c.AnnotationService.GetAnnotations(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(annotations)
}

func (c *AnnotationController) CreateAnnotation(ctx *fiber.Ctx) error {
	var request CreateAnnotationRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	annotation, err := c.AnnotationService.CreateAnnotation(ctx.Context(), &model.Annotation{
		GeoKey: request.GeoKey,
		Name:   request.Name,
		Note:   request.Note,
		Lat:    request.Lat,
		Lng:    request.Lng,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(annotation)
}

func (c *AnnotationController) UpdateAnnotation(ctx *fiber.Ctx) error {
	var request UpdateAnnotationRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	annotation, err := c.AnnotationService.UpdateAnnotation(ctx.Context(), ctx.Params("annotationId"), request.Name, request.Note)
	if err != nil {
		return err
	}

	return ctx.JSON(annotation)
}

func (c *AnnotationController) DeleteAnnotation(ctx *fiber.Ctx) error {
	if err := c.AnnotationService.DeleteAnnotation(ctx.Context(), ctx.Params("annotationId")); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
