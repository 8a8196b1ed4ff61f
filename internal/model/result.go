package model

// CandidateVotes is one ranked entry in a village's candidate list.
type CandidateVotes struct {
	Name  string `json:"name"`
	Party string `json:"party"`
	Votes int    `json:"votes"`
}

// VillageResult is the aggregate for one village in one dataset. Rebuilt in
// full whenever the dataset is (re)aggregated, never mutated in place.
type VillageResult struct {
	GeoKey       string `json:"geoKey"`
	FullName     string `json:"fullName"`
	DistrictName string `json:"districtName"`

	Electorate int `json:"electorate"`
	TotalVotes int `json:"totalVotes"`

	// Candidates is sorted descending by votes; ties keep encounter order.
	Candidates []CandidateVotes `json:"candidates"`

	Lean   string  `json:"lean"`
	Margin float64 `json:"margin"`

	// ElectorateShare is this village's electorate as a fraction of its
	// district's electorate.
	ElectorateShare float64 `json:"electorateShare"`

	// SwingCount is the number of leader-bucket reversals across the
	// village's blended historical series for this dataset's category.
	// Swing is set when the count exceeds the configured threshold.
	SwingCount int  `json:"swingCount"`
	Swing      bool `json:"swing"`
}

// DistrictCandidate is one candidate's district-wide total.
type DistrictCandidate struct {
	Votes int    `json:"votes"`
	Party string `json:"party"`
}

// DistrictResult is the aggregate for one district in one dataset.
type DistrictResult struct {
	Category string `json:"category"`
	Name     string `json:"name"`

	// Electorate/TotalVotes count each constituent village exactly once,
	// regardless of how many candidate rows the village has.
	Electorate int `json:"electorate"`
	TotalVotes int `json:"totalVotes"`

	Candidates map[string]*DistrictCandidate `json:"candidates"`
	Townships  []string                      `json:"townships"`

	// SearchText is the lowercased free-text haystack for district search:
	// township names plus candidate names plus the winner.
	SearchText string `json:"-"`

	Winner      string `json:"winner"`
	WinnerParty string `json:"winnerParty"`
}

// SkipStats counts rows excluded from aggregation, by reason. Surfaced as
// one-time diagnostics and prometheus counters rather than per-row logs.
type SkipStats struct {
	MissingGeoKey     int `json:"missingGeoKey"`
	MissingDistrict   int `json:"missingDistrict"`
	MissingElectorate int `json:"missingElectorate"`
}

// ResultSet is the full aggregation output for one dataset.
type ResultSet struct {
	Category string `json:"category"`
	Year     int    `json:"year"`

	Villages  map[string]*VillageResult  `json:"villages"`
	Districts map[string]*DistrictResult `json:"districts"`

	// VillageDistrict maps geoKey to owning district name, for geometry
	// filtering.
	VillageDistrict map[string]string `json:"villageDistrict"`

	Skipped SkipStats `json:"skipped"`
}
