package repo

import (
	"context"

	"github.com/uptrace/bun"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/repo/selector"
)

type VoteRecord struct {
	db  *bun.DB
	sel selector.S[model.VoteRecord]
}

func NewVoteRecord(db *bun.DB) *VoteRecord {
	return &VoteRecord{db: db, sel: selector.New[model.VoteRecord](db)}
}

// GetRecords returns every raw row of one dataset, ordered so that rows of
// the same village are adjacent and candidate order is stable across calls.
func (r *VoteRecord) GetRecords(ctx context.Context, category string, year int) ([]*model.VoteRecord, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("category = ?", category).
			Where("year = ?", year).
			Order("geo_key ASC", "record_id ASC")
	})
}

// ListDatasets returns the distinct (category, year) pairs present in the
// vote_records table.
func (r *VoteRecord) ListDatasets(ctx context.Context) ([]*model.Dataset, error) {
	var datasets []*model.Dataset
	err := r.db.NewSelect().
		Model((*model.VoteRecord)(nil)).
		ColumnExpr("category").
		ColumnExpr("year").
		GroupExpr("category, year").
		OrderExpr("year DESC, category ASC").
		Scan(ctx, &datasets)
	if err != nil {
		return nil, err
	}

	return datasets, nil
}

func (r *VoteRecord) BatchInsert(ctx context.Context, records []*model.VoteRecord) error {
	if len(records) == 0 {
		return nil
	}
	_, err := r.db.NewInsert().
		Model(&records).
		Exec(ctx)
	return err
}

// DeleteDataset removes all rows of a (category, year) pair, for re-imports.
func (r *VoteRecord) DeleteDataset(ctx context.Context, category string, year int) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*model.VoteRecord)(nil)).
		Where("category = ?", category).
		Where("year = ?", year).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
