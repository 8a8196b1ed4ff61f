package service

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/repo"
)

type Annotation struct {
	AnnotationRepo *repo.Annotation
}

func NewAnnotation(annotationRepo *repo.Annotation) *Annotation {
	return &Annotation{
		AnnotationRepo: annotationRepo,
	}
}

func (s *Annotation) GetAnnotations(ctx context.Context) ([]*model.Annotation, error) {
	return s.AnnotationRepo.GetAnnotations(ctx)
}

func (s *Annotation) GetAnnotationById(ctx context.Context, annotationId string) (*model.Annotation, error) {
	return s.AnnotationRepo.GetAnnotationById(ctx, annotationId)
}

func (s *Annotation) CreateAnnotation(ctx context.Context, annotation *model.Annotation) (*model.Annotation, error) {
	now := time.Now()
	annotation.AnnotationID = ulid.Make().String()
	annotation.CreatedAt = now
	annotation.UpdatedAt = now
	if err := s.AnnotationRepo.CreateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

func (s *Annotation) UpdateAnnotation(ctx context.Context, annotationId, name, note string) (*model.Annotation, error) {
	annotation, err := s.AnnotationRepo.GetAnnotationById(ctx, annotationId)
	if err != nil {
		return nil, err
	}
	annotation.Name = name
	annotation.Note = note
	annotation.UpdatedAt = time.Now()
	if err := s.AnnotationRepo.UpdateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

func (s *Annotation) DeleteAnnotation(ctx context.Context, annotationId string) error {
	return s.AnnotationRepo.DeleteAnnotation(ctx, annotationId)
}
