package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

func TestClassifyLean(t *testing.T) {
	t.Parallel()

	t.Run("no candidates", func(t *testing.T) {
		lean, margin := ClassifyLean(nil, 1000)
		assert.Equal(t, constant.LeanNoData, lean)
		assert.Zero(t, margin)
	})

	t.Run("no electorate", func(t *testing.T) {
		lean, margin := ClassifyLean([]model.CandidateVotes{
			{Name: "甲", Party: constant.PartyKMT, Votes: 100},
		}, 0)
		assert.Equal(t, constant.LeanNoData, lean)
		assert.Zero(t, margin)
	})

	t.Run("unopposed", func(t *testing.T) {
		lean, margin := ClassifyLean([]model.CandidateVotes{
			{Name: "甲", Party: constant.PartyDPP, Votes: 100},
		}, 1000)
		assert.Equal(t, constant.LeanDPP, lean)
		assert.Equal(t, 1.0, margin)
	})

	t.Run("clear lead", func(t *testing.T) {
		lean, margin := ClassifyLean([]model.CandidateVotes{
			{Name: "甲", Party: constant.PartyKMT, Votes: 600},
			{Name: "乙", Party: constant.PartyDPP, Votes: 350},
		}, 1000)
		assert.Equal(t, constant.LeanKMT, lean)
		assert.InDelta(t, 0.25, margin, 1e-9)
	})

	t.Run("margin exactly at threshold is not a tossup", func(t *testing.T) {
		lean, margin := ClassifyLean([]model.CandidateVotes{
			{Name: "甲", Party: constant.PartyDPP, Votes: 600},
			{Name: "乙", Party: constant.PartyKMT, Votes: 550},
		}, 1000)
		assert.Equal(t, constant.LeanDPP, lean)
		assert.InDelta(t, 0.05, margin, 1e-9)
	})

	t.Run("margin below threshold", func(t *testing.T) {
		lean, margin := ClassifyLean([]model.CandidateVotes{
			{Name: "甲", Party: constant.PartyKMT, Votes: 600},
			{Name: "乙", Party: constant.PartyDPP, Votes: 101},
		}, 10000)
		assert.Equal(t, constant.LeanTossup, lean)
		assert.InDelta(t, 0.0499, margin, 1e-9, "computed margin retained on tossups")
	})

	t.Run("third-party leader", func(t *testing.T) {
		lean, _ := ClassifyLean([]model.CandidateVotes{
			{Name: "甲", Party: "台灣民眾黨", Votes: 700},
			{Name: "乙", Party: constant.PartyKMT, Votes: 200},
		}, 1000)
		assert.Equal(t, constant.LeanOther, lean)
	})
}
