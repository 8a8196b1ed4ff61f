package service

import (
	"context"
	"sort"

	"gopkg.in/guregu/null.v3"

	"votemap.tw/backend/internal/app/appconfig"
	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

type Trend struct {
	Config         *appconfig.Config
	HistoryService *History
}

func NewTrend(conf *appconfig.Config, historyService *History) *Trend {
	return &Trend{
		Config:         conf,
		HistoryService: historyService,
	}
}

// bucketLeader returns the leading major-party bucket of one year, or "" on
// a tie. Other never leads.
func bucketLeader(b *model.HistoryBucket) string {
	if b.KMT > b.DPP {
		return constant.BucketKMT
	}
	if b.DPP > b.KMT {
		return constant.BucketDPP
	}
	return ""
}

// CountReversals counts how many times the leading bucket changed across a
// village's series, in year order. Tied years have no leader: they neither
// count as a reversal nor update the previous leader, so a lead that
// survives a tie in between still counts as one reversal when it finally
// flips.
func (s *Trend) CountReversals(series model.HistorySeries) int {
	years := sortedYears(series)

	count := 0
	previous := ""
	for _, year := range years {
		leader := bucketLeader(series[year])
		if leader == "" {
			continue
		}
		if previous != "" && leader != previous {
			count++
		}
		previous = leader
	}
	return count
}

// SwingCount evaluates a village's blended series for a category against the
// configured swing threshold. The flag fires only when the reversal count
// exceeds the threshold, never at the threshold itself.
func (s *Trend) SwingCount(series model.HistorySeries) (int, bool) {
	count := s.CountReversals(series)
	return count, count > s.Config.SwingThreshold
}

// RateRows builds the single-category rate table of one village: one row per
// year with shares of the electorate, plus deltas against the immediately
// preceding row. The first row's deltas are null, as are every row's when
// the preceding year recorded no electorate. Reference-blended years never
// appear here: blending is a charting aid, and cross-category deltas would
// compare different contests.
func (s *Trend) RateRows(series model.HistorySeries) []*model.RateRow {
	rows := make([]*model.RateRow, 0, len(series))

	var prev *model.RateRow
	for _, year := range sortedYears(series) {
		b := series[year]
		if b.FromReference || b.Electorate <= 0 {
			continue
		}
		e := float64(b.Electorate)
		row := &model.RateRow{
			Year: year,
			Rates: model.Rates{
				KMT:      float64(b.KMT) / e,
				DPP:      float64(b.DPP) / e,
				Other:    float64(b.Other) / e,
				NonVoter: float64(b.Electorate-b.TotalVotes) / e,
			},
		}
		if prev != nil {
			deltas := row.Rates.Sub(prev.Rates)
			row.KMTDelta = null.FloatFrom(deltas.KMT)
			row.DPPDelta = null.FloatFrom(deltas.DPP)
			row.OtherDelta = null.FloatFrom(deltas.Other)
			row.NonVoterDelta = null.FloatFrom(deltas.NonVoter)
		}
		rows = append(rows, row)
		prev = row
	}
	return rows
}

// AnalyzeRates returns the rate table for one village and category.
func (s *Trend) AnalyzeRates(ctx context.Context, geoKey, category string) ([]*model.RateRow, error) {
	series, err := s.HistoryService.GetSeries(ctx, geoKey, category, false)
	if err != nil {
		return nil, err
	}
	return s.RateRows(series), nil
}

func sortedYears(series model.HistorySeries) []int {
	years := make([]int, 0, len(series))
	for year := range series {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
