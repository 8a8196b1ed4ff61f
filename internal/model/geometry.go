package model

import (
	"github.com/goccy/go-json"
	"github.com/uptrace/bun"
)

// GeometryFeature is one village polygon as a raw GeoJSON feature, keyed by
// its VILLCODE which doubles as the vote rows' geoKey. The backend treats
// the geometry as opaque apart from the code: no geographic computation.
type GeometryFeature struct {
	bun.BaseModel `bun:"table:geometry_features,alias:gf"`

	VillCode string          `bun:"vill_code,pk" json:"villCode"`
	Feature  json.RawMessage `bun:"feature,type:jsonb" json:"feature"`
}
