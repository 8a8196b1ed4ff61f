package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

func TestComparisonBucketOf(t *testing.T) {
	t.Parallel()

	kmtIncumbent := model.DistrictCandidate{Party: constant.PartyKMT}
	dppIncumbent := model.DistrictCandidate{Party: constant.PartyDPP}

	village := func(winnerParty string, winnerVotes, runnerUpVotes int, runnerUpParty string) *model.VillageResult {
		return &model.VillageResult{Candidates: []model.CandidateVotes{
			{Party: winnerParty, Votes: winnerVotes},
			{Party: runnerUpParty, Votes: runnerUpVotes},
		}}
	}

	t.Run("partisan races map the winner's party", func(t *testing.T) {
		v := village(constant.PartyKMT, 500, 300, constant.PartyDPP)
		assert.Equal(t, constant.BucketKMT, comparisonBucketOf(v, kmtIncumbent, constant.CategoryMayor))

		v = village(constant.PartyDPP, 500, 300, constant.PartyKMT)
		assert.Equal(t, constant.BucketDPP, comparisonBucketOf(v, kmtIncumbent, constant.CategoryMayor))

		v = village("台灣民眾黨", 500, 300, constant.PartyKMT)
		assert.Equal(t, "", comparisonBucketOf(v, kmtIncumbent, constant.CategoryMayor),
			"third-party winners have no flip side")
	})

	t.Run("ties resolve to no side", func(t *testing.T) {
		v := village(constant.PartyKMT, 400, 400, constant.PartyDPP)
		assert.Equal(t, "", comparisonBucketOf(v, kmtIncumbent, constant.CategoryMayor))

		assert.Equal(t, "", comparisonBucketOf(&model.VillageResult{}, kmtIncumbent, constant.CategoryMayor))
	})

	t.Run("referendum sides map through the incumbent", func(t *testing.T) {
		disagreeWins := village(constant.SideDisagree, 500, 300, constant.SideAgree)
		agreeWins := village(constant.SideAgree, 500, 300, constant.SideDisagree)

		assert.Equal(t, constant.BucketKMT, comparisonBucketOf(disagreeWins, kmtIncumbent, constant.CategoryReferendum))
		assert.Equal(t, constant.BucketDPP, comparisonBucketOf(agreeWins, kmtIncumbent, constant.CategoryReferendum))

		assert.Equal(t, constant.BucketDPP, comparisonBucketOf(disagreeWins, dppIncumbent, constant.CategoryReferendum))
		assert.Equal(t, constant.BucketKMT, comparisonBucketOf(agreeWins, dppIncumbent, constant.CategoryReferendum))
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	flip := &Flip{}
	baseline := model.Dataset{Category: constant.CategoryMayor, Year: 2018}
	incumbents := map[string]model.DistrictCandidate{
		"新北市": {Party: constant.PartyKMT},
	}

	store := model.HistoryStore{
		"V-kmt": {constant.CategoryMayor: {2018: {Year: 2018, KMT: 500, DPP: 300}}},
		"V-dpp": {constant.CategoryMayor: {2018: {Year: 2018, KMT: 300, DPP: 500}}},
		"V-tie": {constant.CategoryMayor: {2018: {Year: 2018, KMT: 400, DPP: 400}}},
	}

	villageWonBy := func(geoKey, party string) *model.VillageResult {
		return &model.VillageResult{
			GeoKey: geoKey,
			Candidates: []model.CandidateVotes{
				{Party: party, Votes: 500},
				{Party: "someone else", Votes: 300},
			},
		}
	}

	classify := func(v *model.VillageResult, excluded map[string]struct{}) string {
		return flip.classify(v, "新北市", baseline, store, incumbents, excluded, constant.CategoryMayor)
	}

	t.Run("flips and holds", func(t *testing.T) {
		assert.Equal(t, constant.FlipUnchanged, classify(villageWonBy("V-kmt", constant.PartyKMT), nil))
		assert.Equal(t, constant.FlipKMTToDPP, classify(villageWonBy("V-kmt", constant.PartyDPP), nil))
		assert.Equal(t, constant.FlipDPPToKMT, classify(villageWonBy("V-dpp", constant.PartyKMT), nil))
		assert.Equal(t, constant.FlipUnchanged, classify(villageWonBy("V-dpp", constant.PartyDPP), nil))
	})

	t.Run("outcome counts are exhaustive", func(t *testing.T) {
		villageIn := func(geoKey, district, winnerParty string) *model.VillageResult {
			v := villageWonBy(geoKey, winnerParty)
			v.DistrictName = district
			return v
		}
		comparisonSet := &model.ResultSet{Villages: map[string]*model.VillageResult{
			"V-kmt":  villageIn("V-kmt", "新北市", constant.PartyDPP),
			"V-dpp":  villageIn("V-dpp", "新北市", constant.PartyKMT),
			"V-hold": villageIn("V-dpp", "新北市", constant.PartyDPP),
			"V-tie":  villageIn("V-tie", "新北市", constant.PartyDPP),
			"V-none": villageIn("V-none", "新北市", constant.PartyKMT),
			"V-exd":  villageIn("V-kmt", "苗栗縣", constant.PartyDPP),
			"V-out":  villageIn("V-kmt", "桃園市", constant.PartyDPP),
		}}
		scope := map[string]struct{}{"新北市": {}, "苗栗縣": {}}
		excluded := map[string]struct{}{"苗栗縣": {}}

		summary := &model.FlipSummary{}
		flip.tabulate(summary, comparisonSet, scope, baseline, store, incumbents, excluded, constant.CategoryMayor)

		assert.Equal(t, 6, summary.Total, "out-of-scope villages never counted")
		assert.Equal(t, 1, summary.KMTToDPP)
		assert.Equal(t, 1, summary.DPPToKMT)
		assert.Equal(t, 1, summary.Unchanged)
		assert.Equal(t, 3, summary.Excluded)
		assert.Equal(t, summary.Total,
			summary.KMTToDPP+summary.DPPToKMT+summary.Unchanged+summary.Excluded)
		assert.Len(t, summary.Villages, summary.Total)
	})

	t.Run("exclusions", func(t *testing.T) {
		excluded := map[string]struct{}{"新北市": {}}
		assert.Equal(t, constant.FlipExcluded, classify(villageWonBy("V-kmt", constant.PartyDPP), excluded))

		assert.Equal(t, constant.FlipExcluded, classify(villageWonBy("V-unknown", constant.PartyDPP), nil),
			"no baseline series")
		assert.Equal(t, constant.FlipExcluded, classify(villageWonBy("V-tie", constant.PartyDPP), nil),
			"tied baseline has no side to flip from")
		assert.Equal(t, constant.FlipExcluded, classify(villageWonBy("V-kmt", "台灣民眾黨"), nil),
			"third-party comparison winner")
	})
}
