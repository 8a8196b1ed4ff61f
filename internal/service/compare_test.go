package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

func compareRows(year int, county string, kmt, dpp, electorate, cast int) []*model.VoteRecord {
	return []*model.VoteRecord{
		{Category: constant.CategoryMayor, Year: year, GeoKey: county + "-V1", CountyName: county,
			CandidateName: "甲", PartyName: constant.PartyKMT, Votes: kmt, Electorate: electorate, TotalVotes: cast},
		{Category: constant.CategoryMayor, Year: year, GeoKey: county + "-V1", CountyName: county,
			CandidateName: "乙", PartyName: constant.PartyDPP, Votes: dpp, Electorate: electorate, TotalVotes: cast},
	}
}

func TestCompareTalliesAntisymmetric(t *testing.T) {
	t.Parallel()

	strategy := model.StrategyFor(constant.CategoryMayor)
	t1 := tallyDistrict(compareRows(2018, "新北市", 500, 300, 1000, 820), strategy, "新北市")
	t2 := tallyDistrict(compareRows(2022, "新北市", 380, 460, 1000, 860), strategy, "新北市")

	forward := compareTallies("新北市", t1, t2)
	backward := compareTallies("新北市", t2, t1)

	assert.InDelta(t, -backward.Flow.KMT, forward.Flow.KMT, 1e-9)
	assert.InDelta(t, -backward.Flow.DPP, forward.Flow.DPP, 1e-9)
	assert.InDelta(t, -backward.Flow.Other, forward.Flow.Other, 1e-9)
	assert.InDelta(t, -backward.Flow.NonVoter, forward.Flow.NonVoter, 1e-9)

	assert.InDelta(t, -0.12, forward.Flow.KMT, 1e-9)
	assert.InDelta(t, 0.16, forward.Flow.DPP, 1e-9)
	assert.InDelta(t, -0.04, forward.Flow.NonVoter, 1e-9)

	assert.Equal(t, forward.T1, backward.T2, "endpoints swap, nothing else")
	assert.Equal(t, forward.T2, backward.T1)
}

func TestTallyDistrictScoping(t *testing.T) {
	t.Parallel()

	records := append(
		compareRows(2022, "新北市", 500, 300, 1000, 820),
		compareRows(2022, "基隆市", 120, 200, 400, 330)...,
	)
	strategy := model.StrategyFor(constant.CategoryMayor)

	scoped := tallyDistrict(records, strategy, "新北市")
	assert.Equal(t, 500, scoped.KMT)
	assert.Equal(t, 1000, scoped.Electorate)
	assert.Equal(t, 1, scoped.Villages)

	whole := tallyDistrict(records, strategy, "")
	assert.Equal(t, 620, whole.KMT)
	assert.Equal(t, 1400, whole.Electorate)
	assert.Equal(t, 2, whole.Villages)

	missing := tallyDistrict(records, strategy, "高雄市")
	assert.Zero(t, missing.Villages, "unknown district tallies nothing")
}
