package repo

import (
	"context"

	"github.com/uptrace/bun"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/repo/selector"
)

type Population struct {
	db  *bun.DB
	sel selector.S[model.PopulationRow]
}

func NewPopulation(db *bun.DB) *Population {
	return &Population{db: db, sel: selector.New[model.PopulationRow](db)}
}

func (r *Population) GetRowsByGeoKey(ctx context.Context, geoKey string) ([]*model.PopulationRow, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("geo_key = ?", geoKey).
			Order("age_bucket ASC", "sex ASC")
	})
}
