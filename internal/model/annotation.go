package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Annotation is a user note pinned to a village, placed at the village
// polygon's centroid. The frontend used to keep these page-local; they are
// persisted here so exports survive reloads.
type Annotation struct {
	bun.BaseModel `bun:"table:annotations,alias:an"`

	AnnotationID string `bun:"annotation_id,pk" json:"annotationId"`
	GeoKey       string `bun:"geo_key,notnull" json:"geoKey"`
	Name         string `bun:"name,notnull" json:"name"`
	Note         string `bun:"note,notnull" json:"note"`

	Lat float64 `bun:"lat" json:"lat"`
	Lng float64 `bun:"lng" json:"lng"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}
