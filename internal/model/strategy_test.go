package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
)

func TestStrategyFor(t *testing.T) {
	t.Parallel()

	r := &VoteRecord{
		ElectoralDistrictName: "新北市第07選區",
		CountyName:            "新北市",
		CandidateName:         "甲",
		PartyName:             constant.PartyDPP,
	}

	t.Run("district key", func(t *testing.T) {
		assert.Equal(t, "新北市第07選區", StrategyFor(constant.CategoryLegislator).DistrictKeyOf(r))
		assert.Equal(t, "新北市第07選區", StrategyFor(constant.CategoryReferendum).DistrictKeyOf(r))
		assert.Equal(t, "新北市", StrategyFor(constant.CategoryMayor).DistrictKeyOf(r))
		assert.Equal(t, "新北市", StrategyFor(constant.CategoryPresident).DistrictKeyOf(r))
		assert.Equal(t, "新北市", StrategyFor("one_off_2008").DistrictKeyOf(r), "unknown categories fall back to county")
	})

	t.Run("raw identity", func(t *testing.T) {
		assert.Equal(t, "甲", StrategyFor(constant.CategoryLegislator).RawIdentityOf(r))
		assert.Equal(t, constant.PartyDPP, StrategyFor(constant.CategoryPartyList).RawIdentityOf(r))
		assert.Equal(t, constant.PartyDPP, StrategyFor(constant.CategoryReferendum).RawIdentityOf(r))
	})
}

func TestBucketOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constant.BucketKMT, BucketOf(constant.PartyKMT))
	assert.Equal(t, constant.BucketDPP, BucketOf(constant.PartyDPP))
	assert.Equal(t, constant.BucketOther, BucketOf("台灣民眾黨"))
	assert.Equal(t, constant.BucketOther, BucketOf(constant.SideAgree))
	assert.Equal(t, constant.BucketOther, BucketOf(""))
}
