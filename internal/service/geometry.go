package service

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model/cache"
	"votemap.tw/backend/internal/repo"
)

type Geometry struct {
	GeometryRepo  *repo.Geometry
	ResultService *Result
}

func NewGeometry(geometryRepo *repo.Geometry, resultService *Result) *Geometry {
	return &Geometry{
		GeometryRepo:  geometryRepo,
		ResultService: resultService,
	}
}

// GetStyledGeoJSON returns the village FeatureCollection with each feature's
// lean and fill color for one dataset injected into its properties. Features
// whose VILLCODE has no aggregated result get the no-data style. The
// geometry itself is passed through untouched.
//
// Cache: geoJson#category|year:{category}|{year}, 1hr
func (s *Geometry) GetStyledGeoJSON(ctx context.Context, category string, year int) (json.RawMessage, error) {
	key := category + constant.CacheSep + strconv.Itoa(year)

	var merged json.RawMessage
	_, err := cache.GeoJSON.MutexGetSet(key, &merged, func() (json.RawMessage, error) {
		return s.buildStyledGeoJSON(ctx, category, year)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *Geometry) buildStyledGeoJSON(ctx context.Context, category string, year int) (json.RawMessage, error) {
	features, err := s.GeometryRepo.GetFeatures(ctx)
	if err != nil {
		return nil, err
	}
	set, err := s.ResultService.GetResultSet(ctx, category, year)
	if err != nil {
		return nil, err
	}

	out := []byte(`{"type":"FeatureCollection","features":[]}`)
	for i, f := range features {
		feature := []byte(f.Feature)

		villCode := gjson.GetBytes(feature, "properties.VILLCODE").String()
		if villCode == "" {
			villCode = f.VillCode
		}

		lean := constant.LeanNoData
		if v, ok := set.Villages[villCode]; ok {
			lean = v.Lean
		}

		feature, err = sjson.SetBytes(feature, "properties.lean", lean)
		if err != nil {
			return nil, err
		}
		feature, err = sjson.SetBytes(feature, "properties.fillColor", constant.LeanFillColors[lean])
		if err != nil {
			return nil, err
		}

		out, err = sjson.SetRawBytes(out, "features."+strconv.Itoa(i), feature)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
