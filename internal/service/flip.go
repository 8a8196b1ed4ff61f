package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/zeebo/xxh3"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/cache"
)

type Flip struct {
	ElectionService *Election
	HistoryService  *History
	ResultService   *Result
}

func NewFlip(electionService *Election, historyService *History, resultService *Result) *Flip {
	return &Flip{
		ElectionService: electionService,
		HistoryService:  historyService,
		ResultService:   resultService,
	}
}

// Analyze classifies every village of the target districts by whether its
// leading side flipped between the baseline and comparison elections. With a
// nil district list, referendum comparisons default to the recall districts
// and other comparisons cover every district of the comparison dataset.
//
// Cache: flipSummary#baseline|comparison:{baselineKey}|{comparisonKey}[|districtsHash], 1hr
func (s *Flip) Analyze(ctx context.Context, baseline, comparison model.Dataset, districts []string, includeVillages bool) (*model.FlipSummary, error) {
	key := baseline.Key() + constant.CacheSep + comparison.Key()
	if len(districts) > 0 {
		sorted := append([]string(nil), districts...)
		sort.Strings(sorted)
		key += constant.CacheSep + fmt.Sprintf("%x", xxh3.HashString(strings.Join(sorted, "\x00")))
	}

	var summary model.FlipSummary
	_, err := cache.FlipSummaries.MutexGetSet(key, &summary, func() (model.FlipSummary, error) {
		built, err := s.analyze(ctx, baseline, comparison, districts)
		if err != nil {
			return model.FlipSummary{}, err
		}
		return *built, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	if !includeVillages {
		summary.Villages = nil
	}
	return &summary, nil
}

func (s *Flip) analyze(ctx context.Context, baseline, comparison model.Dataset, districts []string) (*model.FlipSummary, error) {
	comparisonSet, err := s.ResultService.GetResultSet(ctx, comparison.Category, comparison.Year)
	if err != nil {
		return nil, err
	}
	store, err := s.HistoryService.GetStore(ctx, false)
	if err != nil {
		return nil, err
	}
	incumbents, err := s.ResultService.GetDistrictWinners(ctx, baseline.Category, baseline.Year)
	if err != nil {
		return nil, err
	}

	scope := map[string]struct{}{}
	switch {
	case len(districts) > 0:
		for _, d := range districts {
			scope[d] = struct{}{}
		}
	case comparison.Category == constant.CategoryReferendum:
		scope = recallDistrictSet()
	default:
		for name := range comparisonSet.Districts {
			scope[name] = struct{}{}
		}
	}

	summary := &model.FlipSummary{
		BaselineKey:   baseline.Key(),
		ComparisonKey: comparison.Key(),
	}

	// Districts whose incumbent belongs to neither tracked major party have
	// no defined side correspondence: every village of such a district is
	// excluded, and the condition is surfaced once per district.
	excludedDistricts := map[string]struct{}{}
	for district := range scope {
		incumbent, ok := incumbents[district]
		if !ok {
			excludedDistricts[district] = struct{}{}
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("district %q has no %s result to resolve an incumbent from", district, baseline.Key()))
			continue
		}
		if bucket := model.BucketOf(incumbent.Party); bucket == constant.BucketOther && comparison.Category == constant.CategoryReferendum {
			excludedDistricts[district] = struct{}{}
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("district %q incumbent party %q is neither tracked major party", district, incumbent.Party))
		}
	}
	sort.Strings(summary.Warnings)

	s.tabulate(summary, comparisonSet, scope, baseline, store, incumbents, excludedDistricts, comparison.Category)

	return summary, nil
}

// tabulate classifies every in-scope village of the comparison set and
// accumulates the outcome counts. Every counted village falls into exactly
// one outcome, so the four counts always sum to Total.
func (s *Flip) tabulate(
	summary *model.FlipSummary,
	comparisonSet *model.ResultSet,
	scope map[string]struct{},
	baseline model.Dataset,
	store model.HistoryStore,
	incumbents map[string]model.DistrictCandidate,
	excludedDistricts map[string]struct{},
	comparisonCategory string,
) {
	geoKeys := lo.Keys(comparisonSet.Villages)
	sort.Strings(geoKeys)

	for _, geoKey := range geoKeys {
		village := comparisonSet.Villages[geoKey]
		district := village.DistrictName
		if _, ok := scope[district]; !ok {
			continue
		}
		summary.Total++

		outcome := s.classify(village, district, baseline, store, incumbents, excludedDistricts, comparisonCategory)
		switch outcome {
		case constant.FlipKMTToDPP:
			summary.KMTToDPP++
		case constant.FlipDPPToKMT:
			summary.DPPToKMT++
		case constant.FlipUnchanged:
			summary.Unchanged++
		default:
			summary.Excluded++
		}

		summary.Villages = append(summary.Villages, &model.VillageFlip{
			GeoKey:       geoKey,
			DistrictName: district,
			Outcome:      outcome,
		})
	}
}

func (s *Flip) classify(
	village *model.VillageResult,
	district string,
	baseline model.Dataset,
	store model.HistoryStore,
	incumbents map[string]model.DistrictCandidate,
	excludedDistricts map[string]struct{},
	comparisonCategory string,
) string {
	if _, ok := excludedDistricts[district]; ok {
		return constant.FlipExcluded
	}

	series := store.SeriesFor(village.GeoKey, baseline.Category)
	if series == nil {
		return constant.FlipExcluded
	}
	baselineBucket := ""
	if b, ok := series[baseline.Year]; ok {
		baselineBucket = bucketLeader(b)
	}
	if baselineBucket == "" {
		// tied or absent baselines have no side to flip from
		return constant.FlipExcluded
	}

	comparisonBucket := comparisonBucketOf(village, incumbents[district], comparisonCategory)
	if comparisonBucket == "" {
		return constant.FlipExcluded
	}

	switch {
	case baselineBucket == comparisonBucket:
		return constant.FlipUnchanged
	case baselineBucket == constant.BucketKMT:
		return constant.FlipKMTToDPP
	default:
		return constant.FlipDPPToKMT
	}
}

// comparisonBucketOf resolves the bucket a village's comparison winner
// stands for. Referendum sides map through the district's incumbent:
// disagreeing with the recall keeps the incumbent's party, agreeing hands
// the village to the other major party.
func comparisonBucketOf(village *model.VillageResult, incumbent model.DistrictCandidate, category string) string {
	if len(village.Candidates) == 0 {
		return ""
	}
	winner := village.Candidates[0]
	if len(village.Candidates) > 1 && village.Candidates[1].Votes == winner.Votes {
		// tied comparison outcome
		return ""
	}

	if category != constant.CategoryReferendum {
		switch bucket := model.BucketOf(winner.Party); bucket {
		case constant.BucketKMT, constant.BucketDPP:
			return bucket
		default:
			return ""
		}
	}

	incumbentBucket := model.BucketOf(incumbent.Party)
	otherBucket := constant.BucketDPP
	if incumbentBucket == constant.BucketDPP {
		otherBucket = constant.BucketKMT
	}
	switch winner.Party {
	case constant.SideDisagree:
		return incumbentBucket
	case constant.SideAgree:
		return otherBucket
	default:
		return ""
	}
}
