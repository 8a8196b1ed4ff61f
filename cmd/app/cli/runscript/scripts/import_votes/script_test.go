package script_import_votes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
)

const sampleCSV = `geo_key,electoral_district_name,county_name,township_name,village_name,candidate_name,party_name,votes,electorate,total_votes
V1,新北市第07選區,新北市,板橋區,一村,甲,中國國民黨,600,1000,950
V1,新北市第07選區,新北市,板橋區,一村,乙,民主進步黨,350,1000,950
V2,新北市第07選區,新北市,三重區,二村,甲,中國國民黨,100,,
`

func TestParse(t *testing.T) {
	t.Parallel()

	records, err := parse(strings.NewReader(sampleCSV), constant.CategoryLegislator, 2024)
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, records, 3) {
		return
	}

	first := records[0]
	assert.Equal(t, constant.CategoryLegislator, first.Category)
	assert.Equal(t, 2024, first.Year)
	assert.Equal(t, "V1", first.GeoKey)
	assert.Equal(t, "新北市第07選區", first.ElectoralDistrictName)
	assert.Equal(t, constant.PartyKMT, first.PartyName)
	assert.Equal(t, 600, first.Votes)
	assert.Equal(t, 1000, first.Electorate)
	assert.Equal(t, 950, first.TotalVotes)

	third := records[2]
	assert.Zero(t, third.Electorate, "empty totals parse as zero")
	assert.Zero(t, third.TotalVotes)
}

func TestParseRejectsBadInput(t *testing.T) {
	t.Parallel()

	t.Run("reordered header", func(t *testing.T) {
		csv := "county_name,geo_key,electoral_district_name,township_name,village_name,candidate_name,party_name,votes,electorate,total_votes\n"
		_, err := parse(strings.NewReader(csv), constant.CategoryMayor, 2022)
		assert.Error(t, err)
	})

	t.Run("non-numeric votes", func(t *testing.T) {
		csv := sampleCSV[:strings.Index(sampleCSV, "\n")+1] +
			"V1,新北市第07選區,新北市,板橋區,一村,甲,中國國民黨,many,1000,950\n"
		_, err := parse(strings.NewReader(csv), constant.CategoryMayor, 2022)
		assert.Error(t, err)
	})

	t.Run("wrong column count", func(t *testing.T) {
		csv := sampleCSV[:strings.Index(sampleCSV, "\n")+1] + "V1,新北市\n"
		_, err := parse(strings.NewReader(csv), constant.CategoryMayor, 2022)
		assert.Error(t, err)
	})
}
