package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ahmetb/go-linq/v3"

	"votemap.tw/backend/internal/model"
)

type Export struct {
	ResultService     *Result
	AnnotationService *Annotation
}

func NewExport(resultService *Result, annotationService *Annotation) *Export {
	return &Export{
		ResultService:     resultService,
		AnnotationService: annotationService,
	}
}

// ExportRows builds the tabular export of one dataset: one row per village,
// joined with its annotation note when one exists.
func (s *Export) ExportRows(ctx context.Context, category string, year int) ([]*model.ExportRow, error) {
	set, err := s.ResultService.GetResultSet(ctx, category, year)
	if err != nil {
		return nil, err
	}
	annotations, err := s.AnnotationService.GetAnnotations(ctx)
	if err != nil {
		return nil, err
	}
	notes := make(map[string]string, len(annotations))
	linq.From(annotations).
		ToMapByT(
			&notes,
			func(a *model.Annotation) string { return a.GeoKey },
			func(a *model.Annotation) string { return a.Note })

	rows := make([]*model.ExportRow, 0, len(set.Villages))
	for geoKey, v := range set.Villages {
		row := &model.ExportRow{
			DistrictName: v.DistrictName,
			FullName:     v.FullName,
			Electorate:   v.Electorate,
			MarginPct:    v.Margin * 100,
			Lean:         v.Lean,
			Swing:        v.Swing,
			Note:         notes[geoKey],
		}
		if v.Electorate > 0 {
			row.TurnoutPct = float64(v.TotalVotes) / float64(v.Electorate) * 100
		}
		if len(v.Candidates) > 0 {
			row.Leader = v.Candidates[0].Name
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DistrictName != rows[j].DistrictName {
			return rows[i].DistrictName < rows[j].DistrictName
		}
		return rows[i].FullName < rows[j].FullName
	})
	return rows, nil
}

// ExportCSV renders the tabular export as CSV.
func (s *Export) ExportCSV(ctx context.Context, category string, year int) ([]byte, error) {
	rows, err := s.ExportRows(ctx, category, year)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"district", "village", "electorate", "turnout_pct", "leader", "margin_pct", "lean", "swing", "note"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			row.DistrictName,
			row.FullName,
			strconv.Itoa(row.Electorate),
			strconv.FormatFloat(row.TurnoutPct, 'f', 2, 64),
			row.Leader,
			strconv.FormatFloat(row.MarginPct, 'f', 2, 64),
			row.Lean,
			strconv.FormatBool(row.Swing),
			row.Note,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportKML renders every annotation as a KML placemark at its village
// centroid.
func (s *Export) ExportKML(ctx context.Context) ([]byte, error) {
	annotations, err := s.AnnotationService.GetAnnotations(ctx)
	if err != nil {
		return nil, err
	}

	placemarks := make([]*model.Placemark, 0, len(annotations))
	for _, a := range annotations {
		placemarks = append(placemarks, &model.Placemark{
			Name:        a.Name,
			Description: a.Note,
			Lat:         a.Lat,
			Lng:         a.Lng,
		})
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString("<kml xmlns=\"http://www.opengis.net/kml/2.2\">\n<Document>\n")
	for _, p := range placemarks {
		b.WriteString("<Placemark>\n")
		b.WriteString("<name>" + xmlEscape(p.Name) + "</name>\n")
		b.WriteString("<description>" + xmlEscape(p.Description) + "</description>\n")
		// KML coordinates are lng,lat
		fmt.Fprintf(&b, "<Point><coordinates>%f,%f,0</coordinates></Point>\n", p.Lng, p.Lat)
		b.WriteString("</Placemark>\n")
	}
	b.WriteString("</Document>\n</kml>\n")
	return []byte(b.String()), nil
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
