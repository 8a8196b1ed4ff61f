package model

import "gopkg.in/guregu/null.v3"

// Rates are vote shares of the electorate, per bucket, plus the non-voter
// share. All zero when the electorate is zero.
type Rates struct {
	KMT      float64 `json:"kmt"`
	DPP      float64 `json:"dpp"`
	Other    float64 `json:"other"`
	NonVoter float64 `json:"nonVoter"`
}

// Sub returns r minus o, component-wise.
func (r Rates) Sub(o Rates) RateDeltas {
	return RateDeltas{
		KMT:      r.KMT - o.KMT,
		DPP:      r.DPP - o.DPP,
		Other:    r.Other - o.Other,
		NonVoter: r.NonVoter - o.NonVoter,
	}
}

type RateDeltas struct {
	KMT      float64 `json:"kmt"`
	DPP      float64 `json:"dpp"`
	Other    float64 `json:"other"`
	NonVoter float64 `json:"nonVoter"`
}

// RateRow is one year of the single-category rate table. Deltas compare
// against the immediately preceding row of the same filtered series and are
// invalid (null) on the first row.
type RateRow struct {
	Year  int   `json:"year"`
	Rates Rates `json:"rates"`

	KMTDelta      null.Float `json:"kmtDelta"`
	DPPDelta      null.Float `json:"dppDelta"`
	OtherDelta    null.Float `json:"otherDelta"`
	NonVoterDelta null.Float `json:"nonVoterDelta"`
}

// CompareResult is the before/after turnout-flow comparison of one district
// (or a whole dataset) between two years of the same category.
type CompareResult struct {
	District string `json:"district,omitempty"`

	T1   Rates      `json:"t1"`
	T2   Rates      `json:"t2"`
	Flow RateDeltas `json:"flow"`
}
