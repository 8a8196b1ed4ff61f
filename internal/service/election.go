package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/cache"
	"votemap.tw/backend/internal/pkg/apierr"
	"votemap.tw/backend/internal/repo"
)

type Election struct {
	VoteRecordRepo *repo.VoteRecord
}

func NewElection(voteRecordRepo *repo.VoteRecord) *Election {
	return &Election{
		VoteRecordRepo: voteRecordRepo,
	}
}

// Cache: datasets, 1hr
func (s *Election) ListDatasets(ctx context.Context) ([]*model.Dataset, error) {
	var datasets []*model.Dataset
	err := cache.Datasets.MutexGetSet(&datasets, func() ([]*model.Dataset, error) {
		datasets, err := s.VoteRecordRepo.ListDatasets(ctx)
		if err != nil {
			return nil, err
		}
		for _, d := range datasets {
			d.Name = fmt.Sprintf("%d %s", d.Year, constant.CategoryDisplayNames[d.Category])
		}
		return datasets, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return datasets, nil
}

func (s *Election) GetDataset(ctx context.Context, category string, year int) (*model.Dataset, error) {
	datasets, err := s.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range datasets {
		if d.Category == category && d.Year == year {
			return d, nil
		}
	}
	return nil, apierr.ErrNotFound
}

// Cache: records#category|year:{category}|{year}, 1hr
func (s *Election) GetRecords(ctx context.Context, category string, year int) ([]*model.VoteRecord, error) {
	key := category + constant.CacheSep + strconv.Itoa(year)

	var records []*model.VoteRecord
	_, err := cache.Records.MutexGetSet(key, &records, func() ([]*model.VoteRecord, error) {
		return s.VoteRecordRepo.GetRecords(ctx, category, year)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return records, nil
}
