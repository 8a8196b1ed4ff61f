package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/app/appconfig"
	"votemap.tw/backend/internal/model"
)

func testTrend(threshold int) *Trend {
	return &Trend{
		Config: &appconfig.Config{
			ConfigSpec: appconfig.ConfigSpec{SwingThreshold: threshold},
		},
	}
}

// mkSeries builds a series from per-year (kmt, dpp) vote pairs.
func mkSeries(votes map[int][2]int) model.HistorySeries {
	series := model.HistorySeries{}
	for year, v := range votes {
		series[year] = &model.HistoryBucket{Year: year, KMT: v[0], DPP: v[1]}
	}
	return series
}

func TestCountReversals(t *testing.T) {
	t.Parallel()
	trend := testTrend(3)

	t.Run("tie in between does not break the streak", func(t *testing.T) {
		series := mkSeries(map[int][2]int{
			2014: {500, 300},
			2018: {400, 400},
			2022: {300, 500},
		})
		assert.Equal(t, 1, trend.CountReversals(series))
	})

	t.Run("stable lead", func(t *testing.T) {
		series := mkSeries(map[int][2]int{
			2014: {500, 300},
			2018: {450, 400},
			2022: {500, 480},
		})
		assert.Equal(t, 0, trend.CountReversals(series))
	})

	t.Run("alternating every election", func(t *testing.T) {
		series := mkSeries(map[int][2]int{
			2010: {500, 300},
			2014: {300, 500},
			2018: {500, 300},
			2022: {300, 500},
		})
		assert.Equal(t, 3, trend.CountReversals(series))
	})

	t.Run("fewer than two decided years", func(t *testing.T) {
		assert.Equal(t, 0, trend.CountReversals(mkSeries(map[int][2]int{2022: {500, 300}})))
		assert.Equal(t, 0, trend.CountReversals(model.HistorySeries{}))
		assert.Equal(t, 0, trend.CountReversals(mkSeries(map[int][2]int{
			2018: {400, 400},
			2022: {300, 500},
		})))
	})
}

func TestSwingCount(t *testing.T) {
	t.Parallel()

	series := mkSeries(map[int][2]int{
		2010: {500, 300},
		2014: {300, 500},
		2018: {500, 300},
		2022: {300, 500},
	})

	count, swing := testTrend(2).SwingCount(series)
	assert.Equal(t, 3, count)
	assert.True(t, swing)

	count, swing = testTrend(3).SwingCount(series)
	assert.Equal(t, 3, count)
	assert.False(t, swing, "the count must exceed the threshold, not merely reach it")

	count, swing = testTrend(4).SwingCount(series)
	assert.Equal(t, 3, count)
	assert.False(t, swing)
}

func TestRateRows(t *testing.T) {
	t.Parallel()
	trend := testTrend(3)

	series := model.HistorySeries{
		2014: {Year: 2014}, // no electorate recorded
		2016: {Year: 2016, KMT: 400, DPP: 300, Other: 100, Electorate: 1000, TotalVotes: 800},
		2018: {Year: 2018, KMT: 999, DPP: 999, Electorate: 1000, TotalVotes: 999, FromReference: true},
		2020: {Year: 2020, KMT: 300, DPP: 500, Other: 50, Electorate: 1000, TotalVotes: 850},
	}

	rows := trend.RateRows(series)
	if !assert.Len(t, rows, 2, "blended and electorate-less years excluded") {
		return
	}

	first := rows[0]
	assert.Equal(t, 2016, first.Year)
	assert.InDelta(t, 0.4, first.Rates.KMT, 1e-9)
	assert.InDelta(t, 0.2, first.Rates.NonVoter, 1e-9)
	assert.False(t, first.KMTDelta.Valid, "first row has no preceding row")
	assert.False(t, first.NonVoterDelta.Valid)

	second := rows[1]
	assert.Equal(t, 2020, second.Year)
	assert.True(t, second.KMTDelta.Valid)
	assert.InDelta(t, -0.1, second.KMTDelta.Float64, 1e-9)
	assert.InDelta(t, 0.2, second.DPPDelta.Float64, 1e-9)
	assert.InDelta(t, -0.05, second.OtherDelta.Float64, 1e-9)
	assert.InDelta(t, -0.05, second.NonVoterDelta.Float64, 1e-9)
}
