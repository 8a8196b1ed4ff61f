package repo

import (
	"context"

	"github.com/uptrace/bun"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/repo/selector"
)

type Geometry struct {
	db  *bun.DB
	sel selector.S[model.GeometryFeature]
}

func NewGeometry(db *bun.DB) *Geometry {
	return &Geometry{db: db, sel: selector.New[model.GeometryFeature](db)}
}

func (r *Geometry) GetFeatures(ctx context.Context) ([]*model.GeometryFeature, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("vill_code ASC")
	})
}

func (r *Geometry) GetFeatureByVillCode(ctx context.Context, villCode string) (*model.GeometryFeature, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("vill_code = ?", villCode)
	})
}
