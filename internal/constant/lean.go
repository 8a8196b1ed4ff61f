package constant

// Village lean classifications.
const (
	LeanKMT    = "kmt"
	LeanDPP    = "dpp"
	LeanOther  = "other"
	LeanTossup = "tossup"
	LeanNoData = "no-data"
)

// CloseRaceMargin is the margin fraction below which a village is classified
// as a tossup. The comparison is strict: a margin of exactly 0.05 is not a
// tossup. Editorial constant, not derived from data.
const CloseRaceMargin = 0.05

// Map fill colors keyed by lean, written into exported GeoJSON feature
// properties so the frontend styles polygons without duplicating the
// classification rules.
var LeanFillColors = map[string]string{
	LeanKMT:    "#3b82f6",
	LeanDPP:    "#16a34a",
	LeanOther:  "rgba(0,0,0,0.4)",
	LeanTossup: "#ef4444",
	LeanNoData: "#cccccc",
}
