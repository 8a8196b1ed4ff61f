package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/pkg/apierr"
	"votemap.tw/backend/internal/repo/selector"
)

type Annotation struct {
	db  *bun.DB
	sel selector.S[model.Annotation]
}

func NewAnnotation(db *bun.DB) *Annotation {
	return &Annotation{db: db, sel: selector.New[model.Annotation](db)}
}

func (r *Annotation) GetAnnotations(ctx context.Context) ([]*model.Annotation, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at ASC")
	})
}

func (r *Annotation) GetAnnotationById(ctx context.Context, annotationId string) (*model.Annotation, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("annotation_id = ?", annotationId)
	})
}

func (r *Annotation) CreateAnnotation(ctx context.Context, annotation *model.Annotation) error {
	_, err := r.db.NewInsert().
		Model(annotation).
		Exec(ctx)
	return err
}

func (r *Annotation) UpdateAnnotation(ctx context.Context, annotation *model.Annotation) error {
	res, err := r.db.NewUpdate().
		Model(annotation).
		Column("name", "note", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apierr.ErrNotFound
	}
	return nil
}

func (r *Annotation) DeleteAnnotation(ctx context.Context, annotationId string) error {
	res, err := r.db.NewDelete().
		Model((*model.Annotation)(nil)).
		Where("annotation_id = ?", annotationId).
		Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apierr.ErrNotFound
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apierr.ErrNotFound
	}
	return nil
}
