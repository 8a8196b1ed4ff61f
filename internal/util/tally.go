package util

import (
	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

// Tally folds raw vote rows into bucket vote sums plus deduplicated
// electorate/cast totals. Electorate and TotalVotes are attached to every
// candidate row of a village, so they are accumulated once per distinct
// geoKey; candidate votes are accumulated for every row. Every aggregation
// entry point (results, history, flips, comparisons) goes through this type
// instead of re-implementing the fold.
type Tally struct {
	KMT   int
	DPP   int
	Other int

	Electorate int
	TotalVotes int

	// Villages is the number of distinct villages that contributed
	// electorate/cast totals.
	Villages int

	seen map[string]struct{}
}

func NewTally() *Tally {
	return &Tally{seen: map[string]struct{}{}}
}

// Add accumulates one row. Rows without a geoKey or without a positive
// electorate still contribute candidate votes, but never totals.
func (t *Tally) Add(r *model.VoteRecord) {
	switch model.BucketOf(r.PartyName) {
	case constant.BucketKMT:
		t.KMT += r.Votes
	case constant.BucketDPP:
		t.DPP += r.Votes
	default:
		t.Other += r.Votes
	}

	if r.GeoKey == "" || r.Electorate <= 0 {
		return
	}
	if _, ok := t.seen[r.GeoKey]; ok {
		return
	}
	t.seen[r.GeoKey] = struct{}{}
	t.Electorate += r.Electorate
	t.TotalVotes += r.TotalVotes
	t.Villages++
}

// Rates normalizes the tally to shares of the electorate. All zero when no
// electorate was recorded.
func (t *Tally) Rates() model.Rates {
	if t.Electorate <= 0 {
		return model.Rates{}
	}
	e := float64(t.Electorate)
	return model.Rates{
		KMT:      float64(t.KMT) / e,
		DPP:      float64(t.DPP) / e,
		Other:    float64(t.Other) / e,
		NonVoter: float64(t.Electorate-t.TotalVotes) / e,
	}
}

// Leader returns the leading major-party bucket, or "" on a tie between the
// two buckets. Other never leads: reversal detection tracks only the two
// tracked parties.
func (t *Tally) Leader() string {
	if t.KMT > t.DPP {
		return constant.BucketKMT
	}
	if t.DPP > t.KMT {
		return constant.BucketDPP
	}
	return ""
}
