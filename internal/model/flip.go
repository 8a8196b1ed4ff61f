package model

// VillageFlip is the classified outcome for one village between the baseline
// and comparison elections.
type VillageFlip struct {
	GeoKey       string `json:"geoKey"`
	DistrictName string `json:"districtName"`
	Outcome      string `json:"outcome"`
}

// FlipSummary aggregates flip outcomes across all villages of the target
// districts. KMTToDPP+DPPToKMT+Unchanged+Excluded always equals Total, the
// number of villages of those districts present in the comparison dataset.
type FlipSummary struct {
	BaselineKey   string `json:"baselineKey"`
	ComparisonKey string `json:"comparisonKey"`

	KMTToDPP  int `json:"kmtToDpp"`
	DPPToKMT  int `json:"dppToKmt"`
	Unchanged int `json:"unchanged"`
	Excluded  int `json:"excluded"`
	Total     int `json:"total"`

	// Warnings carries district-scoped conditions that excluded whole
	// districts, e.g. an incumbent from neither tracked major party.
	Warnings []string `json:"warnings,omitempty"`

	Villages []*VillageFlip `json:"villages,omitempty"`
}
