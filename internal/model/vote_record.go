package model

import (
	"fmt"

	"github.com/uptrace/bun"
)

// VoteRecord is one raw vote row: one candidate (or referendum side) in one
// village in one election. Electorate and TotalVotes are village-level facts
// redundantly attached to every candidate row of that village; aggregations
// must count them once per GeoKey (see util.Tally), never once per row.
//
// A zero Electorate means the source did not report one for the row; such
// rows still contribute candidate votes but never electorate/cast totals.
type VoteRecord struct {
	bun.BaseModel `bun:"table:vote_records,alias:vr"`

	RecordID int64  `bun:",pk,autoincrement" json:"-"`
	Category string `bun:"category,notnull" json:"category"`
	Year     int    `bun:"year,notnull" json:"year"`

	GeoKey string `bun:"geo_key" json:"geoKey"`

	// ElectoralDistrictName groups legislator and referendum rows;
	// CountyName groups all county-wide races. CategoryStrategy picks.
	ElectoralDistrictName string `bun:"electoral_district_name" json:"electoralDistrictName"`
	CountyName            string `bun:"county_name" json:"countyName"`
	TownshipName          string `bun:"township_name" json:"townshipName"`
	VillageName           string `bun:"village_name" json:"villageName"`

	// CandidateName holds the proposal case number for referendum rows.
	CandidateName string `bun:"candidate_name" json:"candidateName"`
	// PartyName holds the side label (同意/不同意) for referendum rows.
	PartyName string `bun:"party_name" json:"partyName"`

	Votes      int `bun:"votes,notnull" json:"votes"`
	Electorate int `bun:"electorate" json:"electorate"`
	TotalVotes int `bun:"total_votes" json:"totalVotes"`
}

// FullName composes the display name of the row's village.
func (r *VoteRecord) FullName() string {
	return fmt.Sprintf("%s %s %s", r.CountyName, r.TownshipName, r.VillageName)
}

// Dataset identifies one loaded election: a (category, year) pair.
type Dataset struct {
	Category string `json:"category"`
	Year     int    `json:"year"`
	Name     string `json:"name"`
}

// Key returns the canonical dataset key, e.g. "2024_legislator".
func (d Dataset) Key() string {
	return fmt.Sprintf("%d_%s", d.Year, d.Category)
}

func DatasetKey(category string, year int) string {
	return fmt.Sprintf("%d_%s", year, category)
}
