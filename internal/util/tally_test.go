package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

func TestTallyDeduplicatesTotals(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Add(&model.VoteRecord{
		GeoKey: "V1", PartyName: constant.PartyKMT, Votes: 600,
		Electorate: 1000, TotalVotes: 950,
	})
	tally.Add(&model.VoteRecord{
		GeoKey: "V1", PartyName: constant.PartyDPP, Votes: 350,
		Electorate: 1000, TotalVotes: 950,
	})
	tally.Add(&model.VoteRecord{
		GeoKey: "V2", PartyName: constant.PartyDPP, Votes: 380,
		Electorate: 500, TotalVotes: 480,
	})

	assert.Equal(t, 600, tally.KMT)
	assert.Equal(t, 730, tally.DPP)
	assert.Equal(t, 0, tally.Other)
	assert.Equal(t, 1500, tally.Electorate, "electorate counted once per village")
	assert.Equal(t, 1430, tally.TotalVotes)
	assert.Equal(t, 2, tally.Villages)
}

func TestTallyRowsWithoutTotals(t *testing.T) {
	t.Parallel()

	t.Run("missing geoKey", func(t *testing.T) {
		tally := NewTally()
		tally.Add(&model.VoteRecord{PartyName: "某黨", Votes: 42, Electorate: 1000, TotalVotes: 900})

		assert.Equal(t, 42, tally.Other)
		assert.Equal(t, 0, tally.Electorate)
		assert.Equal(t, 0, tally.Villages)
	})

	t.Run("missing electorate", func(t *testing.T) {
		tally := NewTally()
		tally.Add(&model.VoteRecord{GeoKey: "V1", PartyName: constant.PartyKMT, Votes: 7})

		assert.Equal(t, 7, tally.KMT)
		assert.Equal(t, 0, tally.Electorate)
		assert.Equal(t, 0, tally.Villages)
	})
}

func TestTallyRates(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Add(&model.VoteRecord{
		GeoKey: "V1", PartyName: constant.PartyKMT, Votes: 400,
		Electorate: 1000, TotalVotes: 800,
	})
	tally.Add(&model.VoteRecord{
		GeoKey: "V1", PartyName: constant.PartyDPP, Votes: 300,
		Electorate: 1000, TotalVotes: 800,
	})
	tally.Add(&model.VoteRecord{
		GeoKey: "V1", PartyName: "時代力量", Votes: 100,
		Electorate: 1000, TotalVotes: 800,
	})

	rates := tally.Rates()
	assert.InDelta(t, 0.4, rates.KMT, 1e-9)
	assert.InDelta(t, 0.3, rates.DPP, 1e-9)
	assert.InDelta(t, 0.1, rates.Other, 1e-9)
	assert.InDelta(t, 0.2, rates.NonVoter, 1e-9)

	assert.Equal(t, model.Rates{}, NewTally().Rates(), "no electorate recorded")
}

func TestTallyLeader(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Add(&model.VoteRecord{GeoKey: "V1", PartyName: constant.PartyKMT, Votes: 100, Electorate: 500})
	assert.Equal(t, constant.BucketKMT, tally.Leader())

	tally.Add(&model.VoteRecord{GeoKey: "V1", PartyName: constant.PartyDPP, Votes: 100, Electorate: 500})
	assert.Equal(t, "", tally.Leader(), "tie between the buckets")

	tally.Add(&model.VoteRecord{GeoKey: "V1", PartyName: constant.PartyDPP, Votes: 1, Electorate: 500})
	assert.Equal(t, constant.BucketDPP, tally.Leader())

	tally.Add(&model.VoteRecord{GeoKey: "V1", PartyName: "無黨籍", Votes: 9999, Electorate: 500})
	assert.Equal(t, constant.BucketDPP, tally.Leader(), "other never leads")
}
