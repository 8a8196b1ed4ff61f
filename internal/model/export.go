package model

// ExportRow is one village of a dataset's tabular export. String building
// (CSV quoting, KML escaping) happens at the boundary; the engine only
// produces the data.
type ExportRow struct {
	DistrictName string  `json:"districtName"`
	FullName     string  `json:"fullName"`
	Electorate   int     `json:"electorate"`
	TurnoutPct   float64 `json:"turnoutPct"`
	Leader       string  `json:"leader"`
	MarginPct    float64 `json:"marginPct"`
	Lean         string  `json:"lean"`
	Swing        bool    `json:"swing"`
	Note         string  `json:"note"`
}

// Placemark is one annotation prepared for KML export.
type Placemark struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}
