package model

import "votemap.tw/backend/internal/constant"

// CategoryStrategy resolves the category-dependent field mappings of a raw
// vote row: which column names the district, and which raw identity a row's
// votes accumulate under. Selected once per category instead of branching
// inline throughout aggregation code.
type CategoryStrategy struct {
	Category string

	districtKey func(*VoteRecord) string
	rawIdentity func(*VoteRecord) string
}

// StrategyFor returns the strategy for a category. Unknown categories fall
// back to county grouping, which matches how one-off datasets were handled
// before categories were formalized.
func StrategyFor(category string) CategoryStrategy {
	s := CategoryStrategy{Category: category}
	switch category {
	case constant.CategoryLegislator, constant.CategoryReferendum:
		s.districtKey = func(r *VoteRecord) string { return r.ElectoralDistrictName }
	default:
		s.districtKey = func(r *VoteRecord) string { return r.CountyName }
	}
	switch category {
	case constant.CategoryPartyList, constant.CategoryReferendum:
		// the "candidate" concept is the option itself
		s.rawIdentity = func(r *VoteRecord) string { return r.PartyName }
	default:
		s.rawIdentity = func(r *VoteRecord) string { return r.CandidateName }
	}
	return s
}

// DistrictKeyOf returns the name of the district the row belongs to, or ""
// when the row does not carry one.
func (s CategoryStrategy) DistrictKeyOf(r *VoteRecord) string {
	return s.districtKey(r)
}

// RawIdentityOf returns the identity a row's votes accumulate under in
// per-identity maps: candidate name for most categories, party/side label
// when the option itself is the contest.
func (s CategoryStrategy) RawIdentityOf(r *VoteRecord) string {
	return s.rawIdentity(r)
}

// BucketOf maps a party or side label to its aggregation bucket.
func BucketOf(partyName string) string {
	switch partyName {
	case constant.PartyKMT:
		return constant.BucketKMT
	case constant.PartyDPP:
		return constant.BucketDPP
	default:
		return constant.BucketOther
	}
}
