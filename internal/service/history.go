package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/cache"
)

const (
	historyStoreKeyRaw     = "raw"
	historyStoreKeyBlended = "blended"
)

type History struct {
	ElectionService *Election
}

func NewHistory(electionService *Election) *History {
	return &History{
		ElectionService: electionService,
	}
}

// GetStore returns the per-village historical series of every loaded
// dataset. With blended set, years of the reference category are merged into
// every other category's series, flagged FromReference.
//
// Cache: historyStore#blend:{raw|blended}, 1hr
func (s *History) GetStore(ctx context.Context, blended bool) (model.HistoryStore, error) {
	key := historyStoreKeyRaw
	if blended {
		key = historyStoreKeyBlended
	}

	var store model.HistoryStore
	_, err := cache.HistoryStores.MutexGetSet(key, &store, func() (model.HistoryStore, error) {
		raw, err := s.buildStore(ctx)
		if err != nil {
			return nil, err
		}
		if !blended {
			return raw, nil
		}
		return blendStore(raw), nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// GetSeries returns one village's series for a category, or nil when the
// village never appeared in that category.
func (s *History) GetSeries(ctx context.Context, geoKey, category string, blended bool) (model.HistorySeries, error) {
	store, err := s.GetStore(ctx, blended)
	if err != nil {
		return nil, err
	}
	return store.SeriesFor(geoKey, category), nil
}

func (s *History) buildStore(ctx context.Context) (model.HistoryStore, error) {
	datasets, err := s.ElectionService.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}

	store := model.HistoryStore{}
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	for _, dataset := range datasets {
		dataset := dataset
		eg.Go(func() error {
			records, err := s.ElectionService.GetRecords(egCtx, dataset.Category, dataset.Year)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			foldRecords(store, dataset, records)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return store, nil
}

func foldRecords(store model.HistoryStore, dataset *model.Dataset, records []*model.VoteRecord) {
	strategy := model.StrategyFor(dataset.Category)
	for _, r := range records {
		if r.GeoKey == "" {
			continue
		}
		byCategory, ok := store[r.GeoKey]
		if !ok {
			byCategory = map[string]model.HistorySeries{}
			store[r.GeoKey] = byCategory
		}
		series, ok := byCategory[dataset.Category]
		if !ok {
			series = model.HistorySeries{}
			byCategory[dataset.Category] = series
		}
		bucket, ok := series[dataset.Year]
		if !ok {
			bucket = &model.HistoryBucket{
				Year:       dataset.Year,
				ByIdentity: map[string]int{},
			}
			series[dataset.Year] = bucket
		}

		switch model.BucketOf(r.PartyName) {
		case constant.BucketKMT:
			bucket.KMT += r.Votes
		case constant.BucketDPP:
			bucket.DPP += r.Votes
		default:
			bucket.Other += r.Votes
		}
		if identity := strategy.RawIdentityOf(r); identity != "" {
			bucket.ByIdentity[identity] += r.Votes
		}

		// electorate/cast are row-redundant: first positive value wins
		if bucket.Electorate == 0 && r.Electorate > 0 {
			bucket.Electorate = r.Electorate
			bucket.TotalVotes = r.TotalVotes
		}
	}
}

// blendStore merges reference-category years into every other category's
// series for charting continuity. Merged buckets are copies flagged
// FromReference; a year the category itself has is never overwritten.
func blendStore(raw model.HistoryStore) model.HistoryStore {
	blended := model.HistoryStore{}
	for geoKey, byCategory := range raw {
		ref := byCategory[constant.ReferenceCategory]
		out := map[string]model.HistorySeries{}
		for category, series := range byCategory {
			merged := model.HistorySeries{}
			for year, bucket := range series {
				merged[year] = bucket
			}
			if category != constant.ReferenceCategory {
				for year, bucket := range ref {
					if _, ok := merged[year]; ok {
						continue
					}
					copied := *bucket
					copied.FromReference = true
					merged[year] = &copied
				}
			}
			out[category] = merged
		}
		blended[geoKey] = out
	}
	return blended
}
