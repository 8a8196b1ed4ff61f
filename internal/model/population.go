package model

import "github.com/uptrace/bun"

// PopulationRow is one age-bucket/sex count for a village's population
// pyramid. Chart feed only: per-age counts say nothing about how an age
// group voted, and must not be fed into lean analysis (ecological fallacy).
type PopulationRow struct {
	bun.BaseModel `bun:"table:population_rows,alias:pr"`

	RowID     int64  `bun:",pk,autoincrement" json:"-"`
	GeoKey    string `bun:"geo_key,notnull" json:"geoKey"`
	AgeBucket string `bun:"age_bucket,notnull" json:"ageBucket"`
	Sex       string `bun:"sex,notnull" json:"sex"`
	Count     int    `bun:"count,notnull" json:"count"`
}
