package service

import (
	"context"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/pkg/apierr"
	"votemap.tw/backend/internal/util"
)

type Compare struct {
	ElectionService *Election
}

func NewCompare(electionService *Election) *Compare {
	return &Compare{
		ElectionService: electionService,
	}
}

// Compare tallies two years of the same category into electorate shares and
// returns the flow between them. With a district, only rows of that district
// are tallied; otherwise the whole dataset. Swapping the years negates every
// flow component.
func (s *Compare) Compare(ctx context.Context, category string, year1, year2 int, district string) (*model.CompareResult, error) {
	t1, err := s.tally(ctx, category, year1, district)
	if err != nil {
		return nil, err
	}
	t2, err := s.tally(ctx, category, year2, district)
	if err != nil {
		return nil, err
	}

	if district != "" && t1.Villages == 0 && t2.Villages == 0 {
		return nil, apierr.ErrNotFound
	}

	return compareTallies(district, t1, t2), nil
}

func (s *Compare) tally(ctx context.Context, category string, year int, district string) (*util.Tally, error) {
	records, err := s.ElectionService.GetRecords(ctx, category, year)
	if err != nil {
		return nil, err
	}
	return tallyDistrict(records, model.StrategyFor(category), district), nil
}

// tallyDistrict folds the rows of one district (or all rows, with an empty
// district) through the shared tally.
func tallyDistrict(records []*model.VoteRecord, strategy model.CategoryStrategy, district string) *util.Tally {
	t := util.NewTally()
	for _, r := range records {
		if district != "" && strategy.DistrictKeyOf(r) != district {
			continue
		}
		t.Add(r)
	}
	return t
}

// compareTallies normalizes both tallies and takes the flow between them.
// Swapping the tallies negates every flow component.
func compareTallies(district string, t1, t2 *util.Tally) *model.CompareResult {
	r1 := t1.Rates()
	r2 := t2.Rates()
	return &model.CompareResult{
		District: district,
		T1:       r1,
		T2:       r2,
		Flow:     r2.Sub(r1),
	}
}
