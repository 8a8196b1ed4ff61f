package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

func TestFoldRecords(t *testing.T) {
	t.Parallel()

	store := model.HistoryStore{}
	dataset := &model.Dataset{Category: constant.CategoryMayor, Year: 2022}

	foldRecords(store, dataset, []*model.VoteRecord{
		{GeoKey: "V1", CandidateName: "甲", PartyName: constant.PartyKMT, Votes: 600},
		{GeoKey: "V1", CandidateName: "乙", PartyName: constant.PartyDPP, Votes: 350, Electorate: 1000, TotalVotes: 950},
		{GeoKey: "V1", CandidateName: "丙", PartyName: "無黨籍", Votes: 20, Electorate: 1000, TotalVotes: 950},
		{GeoKey: "", CandidateName: "甲", PartyName: constant.PartyKMT, Votes: 9999},
	})

	series := store.SeriesFor("V1", constant.CategoryMayor)
	if !assert.NotNil(t, series) {
		return
	}
	bucket := series[2022]
	if !assert.NotNil(t, bucket) {
		return
	}

	assert.Equal(t, 600, bucket.KMT, "rows without a geoKey are dropped")
	assert.Equal(t, 350, bucket.DPP)
	assert.Equal(t, 20, bucket.Other)
	assert.Equal(t, 1000, bucket.Electorate, "first positive electorate wins")
	assert.Equal(t, 950, bucket.TotalVotes)
	assert.Equal(t, map[string]int{"甲": 600, "乙": 350, "丙": 20}, bucket.ByIdentity)

	assert.Nil(t, store.SeriesFor("V1", constant.CategoryLegislator))
	assert.Nil(t, store.SeriesFor("V2", constant.CategoryMayor))
}

func TestFoldRecordsIdentityByCategory(t *testing.T) {
	t.Parallel()

	store := model.HistoryStore{}
	foldRecords(store, &model.Dataset{Category: constant.CategoryReferendum, Year: 2025}, []*model.VoteRecord{
		{GeoKey: "V1", CandidateName: "第1案", PartyName: constant.SideAgree, Votes: 300, Electorate: 1000, TotalVotes: 700},
		{GeoKey: "V1", CandidateName: "第1案", PartyName: constant.SideDisagree, Votes: 400, Electorate: 1000, TotalVotes: 700},
	})

	bucket := store.SeriesFor("V1", constant.CategoryReferendum)[2025]
	if !assert.NotNil(t, bucket) {
		return
	}
	// referendum rows accumulate under the side label, and both sides are
	// bucketed as other
	assert.Equal(t, map[string]int{constant.SideAgree: 300, constant.SideDisagree: 400}, bucket.ByIdentity)
	assert.Equal(t, 700, bucket.Other)
	assert.Zero(t, bucket.KMT)
	assert.Zero(t, bucket.DPP)
}

func TestBlendStore(t *testing.T) {
	t.Parallel()

	raw := model.HistoryStore{
		"V1": {
			constant.CategoryMayor: {
				2018: {Year: 2018, KMT: 500, DPP: 300, Electorate: 1000},
				2022: {Year: 2022, KMT: 400, DPP: 450, Electorate: 1000},
			},
			constant.CategoryLegislator: {
				2020: {Year: 2020, KMT: 350, DPP: 420, Electorate: 1000},
				2022: {Year: 2022, KMT: 111, DPP: 222, Electorate: 1000},
			},
		},
	}

	blended := blendStore(raw)

	legislator := blended.SeriesFor("V1", constant.CategoryLegislator)
	if !assert.Len(t, legislator, 3) {
		return
	}

	assert.True(t, legislator[2018].FromReference, "mayor year merged into the legislator series")
	assert.Equal(t, 500, legislator[2018].KMT)

	assert.False(t, legislator[2022].FromReference, "a year the category itself has is never overwritten")
	assert.Equal(t, 111, legislator[2022].KMT)
	assert.False(t, legislator[2020].FromReference)

	mayor := blended.SeriesFor("V1", constant.CategoryMayor)
	assert.Len(t, mayor, 2, "the reference category itself is left alone")
	assert.False(t, mayor[2018].FromReference)

	legislator[2018].KMT = 0
	assert.Equal(t, 500, raw.SeriesFor("V1", constant.CategoryMayor)[2018].KMT,
		"merged buckets are copies")
}
