package util

import (
	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

func leanOfBucket(bucket string) string {
	switch bucket {
	case constant.BucketKMT:
		return constant.LeanKMT
	case constant.BucketDPP:
		return constant.LeanDPP
	default:
		return constant.LeanOther
	}
}

// ClassifyLean assigns a village's lean and signed margin fraction from its
// ranked candidate list and electorate.
//
// No candidates or no electorate: no-data, margin 0. Unopposed: the single
// candidate's bucket with margin +1. Otherwise the margin is (leader votes −
// runner-up votes) / electorate from the leader's perspective; below the
// close-race threshold (strictly) the village is a tossup, with the computed
// margin retained.
func ClassifyLean(candidates []model.CandidateVotes, electorate int) (string, float64) {
	if len(candidates) == 0 || electorate <= 0 {
		return constant.LeanNoData, 0
	}

	leader := candidates[0]
	if len(candidates) == 1 {
		return leanOfBucket(model.BucketOf(leader.Party)), 1
	}

	runnerUp := candidates[1]
	margin := float64(leader.Votes-runnerUp.Votes) / float64(electorate)
	if abs(margin) < constant.CloseRaceMargin {
		return constant.LeanTossup, margin
	}
	return leanOfBucket(model.BucketOf(leader.Party)), margin
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
