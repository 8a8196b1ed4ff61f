package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

func TestBuildResultSet(t *testing.T) {
	t.Parallel()

	records := []*model.VoteRecord{
		{GeoKey: "V1", CountyName: "新北市", TownshipName: "板橋區", VillageName: "一村",
			CandidateName: "Alice", PartyName: constant.PartyKMT, Votes: 600, Electorate: 1000, TotalVotes: 950},
		{GeoKey: "V1", CountyName: "新北市", TownshipName: "板橋區", VillageName: "一村",
			CandidateName: "Bob", PartyName: constant.PartyDPP, Votes: 350, Electorate: 1000, TotalVotes: 950},
		{GeoKey: "V2", CountyName: "新北市", TownshipName: "三重區", VillageName: "二村",
			CandidateName: "Alice", PartyName: constant.PartyKMT, Votes: 100, Electorate: 500, TotalVotes: 480},
		{GeoKey: "V2", CountyName: "新北市", TownshipName: "三重區", VillageName: "二村",
			CandidateName: "Bob", PartyName: constant.PartyDPP, Votes: 380, Electorate: 500, TotalVotes: 480},
	}

	store := model.HistoryStore{
		"V1": {
			constant.CategoryMayor: {
				2010: {Year: 2010, KMT: 500, DPP: 300},
				2014: {Year: 2014, KMT: 300, DPP: 500},
				2018: {Year: 2018, KMT: 500, DPP: 300},
				2022: {Year: 2022, KMT: 300, DPP: 500},
			},
		},
	}

	set := buildResultSet(constant.CategoryMayor, 2022, records, store, testTrend(2))

	t.Run("villages", func(t *testing.T) {
		v1 := set.Villages["V1"]
		if !assert.NotNil(t, v1) {
			return
		}
		assert.Equal(t, "新北市 板橋區 一村", v1.FullName)
		assert.Equal(t, "新北市", v1.DistrictName)
		assert.Equal(t, 1000, v1.Electorate)
		assert.Equal(t, constant.LeanKMT, v1.Lean)
		assert.InDelta(t, 0.25, v1.Margin, 1e-9)
		assert.Equal(t, "Alice", v1.Candidates[0].Name, "candidates ranked by votes")
		assert.Equal(t, 3, v1.SwingCount)
		assert.True(t, v1.Swing)
		assert.InDelta(t, 1000.0/1500.0, v1.ElectorateShare, 1e-9)

		v2 := set.Villages["V2"]
		if !assert.NotNil(t, v2) {
			return
		}
		assert.Equal(t, constant.LeanDPP, v2.Lean)
		assert.InDelta(t, 0.56, v2.Margin, 1e-9)
		assert.Equal(t, "Bob", v2.Candidates[0].Name)
		assert.Zero(t, v2.SwingCount, "no series for this village")
		assert.False(t, v2.Swing)
	})

	t.Run("district", func(t *testing.T) {
		d := set.Districts["新北市"]
		if !assert.NotNil(t, d) {
			return
		}
		assert.Equal(t, 1500, d.Electorate, "villages counted once despite multiple candidate rows")
		assert.Equal(t, 1430, d.TotalVotes)
		assert.Equal(t, 700, d.Candidates["Alice"].Votes)
		assert.Equal(t, 730, d.Candidates["Bob"].Votes)
		assert.Equal(t, "Bob", d.Winner, "district winner may disagree with most villages")
		assert.Equal(t, constant.PartyDPP, d.WinnerParty)
		assert.ElementsMatch(t, []string{"板橋區", "三重區"}, d.Townships)
		assert.True(t, strings.Contains(d.SearchText, "bob"))
		assert.True(t, strings.Contains(d.SearchText, "板橋區"))
	})

	t.Run("village-district mapping", func(t *testing.T) {
		assert.Equal(t, map[string]string{"V1": "新北市", "V2": "新北市"}, set.VillageDistrict)
	})

	assert.Equal(t, model.SkipStats{}, set.Skipped)
}

func TestBuildResultSetSkips(t *testing.T) {
	t.Parallel()

	records := []*model.VoteRecord{
		{GeoKey: "", CountyName: "新北市", CandidateName: "Alice", PartyName: constant.PartyKMT, Votes: 10},
		{GeoKey: "V9", CountyName: "", CandidateName: "Alice", PartyName: constant.PartyKMT, Votes: 5},
		{GeoKey: "V1", CountyName: "新北市", CandidateName: "Alice", PartyName: constant.PartyKMT, Votes: 100},
	}

	set := buildResultSet(constant.CategoryMayor, 2022, records, model.HistoryStore{}, testTrend(3))

	assert.Equal(t, 1, set.Skipped.MissingGeoKey)
	assert.Equal(t, 1, set.Skipped.MissingDistrict)
	assert.Equal(t, 2, set.Skipped.MissingElectorate)

	// rows without a geoKey still feed the district aggregate
	assert.Equal(t, 110, set.Districts["新北市"].Candidates["Alice"].Votes)
	assert.NotContains(t, set.Villages, "")
	assert.NotContains(t, set.VillageDistrict, "V9", "district-less village stays unmapped")

	v1 := set.Villages["V1"]
	if assert.NotNil(t, v1) {
		assert.Equal(t, constant.LeanNoData, v1.Lean)
	}
}

func TestBuildResultSetTieOrder(t *testing.T) {
	t.Parallel()

	records := []*model.VoteRecord{
		{GeoKey: "V1", CountyName: "基隆市", CandidateName: "Xavier", PartyName: constant.PartyKMT, Votes: 10, Electorate: 100, TotalVotes: 20},
		{GeoKey: "V1", CountyName: "基隆市", CandidateName: "Yanni", PartyName: constant.PartyDPP, Votes: 10, Electorate: 100, TotalVotes: 20},
	}

	set := buildResultSet(constant.CategoryMayor, 2022, records, model.HistoryStore{}, testTrend(3))

	v1 := set.Villages["V1"]
	if !assert.NotNil(t, v1) {
		return
	}
	assert.Equal(t, "Xavier", v1.Candidates[0].Name, "ties keep encounter order")
	assert.Equal(t, constant.LeanTossup, v1.Lean)
	assert.Zero(t, v1.Margin)
}
