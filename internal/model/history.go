package model

// HistoryBucket accumulates one village's votes for one (category, year)
// into the two major-party buckets plus Other. Electorate and TotalVotes are
// set once from the first row with a positive electorate and never
// overwritten; the values are row-redundant per village.
type HistoryBucket struct {
	Year int `json:"year"`

	KMT   int `json:"kmt"`
	DPP   int `json:"dpp"`
	Other int `json:"other"`

	Electorate int `json:"electorate"`
	TotalVotes int `json:"totalVotes"`

	// ByIdentity accumulates votes under the raw identity (candidate name,
	// or party/side label for party-list and referendum), so that ties
	// between the buckets can be disambiguated by who actually ran rather
	// than by bucket membership.
	ByIdentity map[string]int `json:"byIdentity"`

	// FromReference marks years merged in from the reference category when
	// blending a chart series. Blended years never feed the rate table.
	FromReference bool `json:"fromReference"`
}

// HistorySeries is one village's per-year buckets for one category.
type HistorySeries map[int]*HistoryBucket

// HistoryStore is the full multi-year, multi-category store:
// geoKey -> category -> year -> bucket.
type HistoryStore map[string]map[string]HistorySeries

// SeriesFor returns the series for a (geoKey, category), or nil.
func (s HistoryStore) SeriesFor(geoKey, category string) HistorySeries {
	byCategory, ok := s[geoKey]
	if !ok {
		return nil
	}
	return byCategory[category]
}
