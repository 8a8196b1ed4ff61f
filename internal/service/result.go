package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"votemap.tw/backend/internal/app/appconfig"
	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/cache"
	"votemap.tw/backend/internal/pkg/apierr"
	"votemap.tw/backend/internal/pkg/observability"
	"votemap.tw/backend/internal/util"
)

type Result struct {
	Config          *appconfig.Config
	ElectionService *Election
	HistoryService  *History
	TrendService    *Trend
}

func NewResult(conf *appconfig.Config, electionService *Election, historyService *History, trendService *Trend) *Result {
	return &Result{
		Config:          conf,
		ElectionService: electionService,
		HistoryService:  historyService,
		TrendService:    trendService,
	}
}

// Cache: resultSet#category|year:{category}|{year}, 1hr, records last modified time
func (s *Result) GetResultSet(ctx context.Context, category string, year int) (*model.ResultSet, error) {
	key := category + constant.CacheSep + strconv.Itoa(year)

	var set model.ResultSet
	calculated, err := cache.ResultSets.MutexGetSet(key, &set, func() (model.ResultSet, error) {
		built, err := s.aggregate(ctx, category, year)
		if err != nil {
			return model.ResultSet{}, err
		}
		return *built, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	} else if calculated {
		cache.LastModifiedTime.Set("[resultSet#category|year:"+key+"]", time.Now(), 0)
	}
	return &set, nil
}

func (s *Result) GetVillageResult(ctx context.Context, category string, year int, geoKey string) (*model.VillageResult, error) {
	set, err := s.GetResultSet(ctx, category, year)
	if err != nil {
		return nil, err
	}
	village, ok := set.Villages[geoKey]
	if !ok {
		return nil, apierr.ErrNotFound
	}
	return village, nil
}

func (s *Result) GetDistrictResult(ctx context.Context, category string, year int, district string) (*model.DistrictResult, error) {
	set, err := s.GetResultSet(ctx, category, year)
	if err != nil {
		return nil, err
	}
	result, ok := set.Districts[district]
	if !ok {
		return nil, apierr.ErrNotFound
	}
	return result, nil
}

// GetDistrictWinners returns each district's winning candidate totals, the
// preload flip analysis resolves incumbents from.
//
// Cache: districtWinners#category|year:{category}|{year}, 1hr
func (s *Result) GetDistrictWinners(ctx context.Context, category string, year int) (map[string]model.DistrictCandidate, error) {
	key := category + constant.CacheSep + strconv.Itoa(year)

	var winners map[string]model.DistrictCandidate
	_, err := cache.DistrictWinners.MutexGetSet(key, &winners, func() (map[string]model.DistrictCandidate, error) {
		set, err := s.GetResultSet(ctx, category, year)
		if err != nil {
			return nil, err
		}
		winners := make(map[string]model.DistrictCandidate, len(set.Districts))
		for name, district := range set.Districts {
			if c, ok := district.Candidates[district.Winner]; ok {
				winners[name] = *c
			}
		}
		return winners, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return winners, nil
}

// ListDistricts returns district results matching a free-text query, ordered
// by district name under zh-Hant collation. Legislator listings without a
// query are restricted to the districts under active recall scrutiny.
func (s *Result) ListDistricts(ctx context.Context, category string, year int, query string) ([]*model.DistrictResult, error) {
	set, err := s.GetResultSet(ctx, category, year)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))

	var scope map[string]struct{}
	if query == "" && category == constant.CategoryLegislator {
		scope = recallDistrictSet()
	}

	results := make([]*model.DistrictResult, 0, len(set.Districts))
	for name, district := range set.Districts {
		if scope != nil {
			if _, ok := scope[name]; !ok {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(name), query) && !strings.Contains(district.SearchText, query) {
			continue
		}
		results = append(results, district)
	}

	c := collate.New(language.TraditionalChinese)
	sort.Slice(results, func(i, j int) bool {
		return c.CompareString(results[i].Name, results[j].Name) < 0
	})
	return results, nil
}

func recallDistrictSet() map[string]struct{} {
	districts := constant.RecallDistricts
	if raw, ok := cache.Properties[constant.PropertyRecallDistricts]; ok {
		var override []string
		if err := json.Unmarshal([]byte(raw), &override); err == nil && len(override) > 0 {
			districts = override
		}
	}
	set := make(map[string]struct{}, len(districts))
	for _, d := range districts {
		set[d] = struct{}{}
	}
	return set
}

type villageAccum struct {
	fullName     string
	districtName string
	electorate   int
	totalVotes   int

	votes []model.CandidateVotes
}

type districtAccum struct {
	category string
	name     string

	electorate int
	totalVotes int
	seen       map[string]struct{}

	candidates map[string]*model.DistrictCandidate
	order      []string

	townships     []string
	townshipsSeen map[string]struct{}
}

func (s *Result) aggregate(ctx context.Context, category string, year int) (*model.ResultSet, error) {
	start := time.Now()
	defer func() {
		observability.AggregationDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	}()

	records, err := s.ElectionService.GetRecords(ctx, category, year)
	if err != nil {
		return nil, err
	}
	store, err := s.HistoryService.GetStore(ctx, true)
	if err != nil {
		return nil, err
	}

	set := buildResultSet(category, year, records, store, s.TrendService)
	reportSkipped(category, year, set.Skipped)

	return set, nil
}

// buildResultSet folds one dataset's raw rows into village and district
// aggregates. Pure with respect to its inputs.
func buildResultSet(category string, year int, records []*model.VoteRecord, store model.HistoryStore, trend *Trend) *model.ResultSet {
	strategy := model.StrategyFor(category)

	set := &model.ResultSet{
		Category:        category,
		Year:            year,
		Villages:        map[string]*model.VillageResult{},
		Districts:       map[string]*model.DistrictResult{},
		VillageDistrict: map[string]string{},
	}

	villages := map[string]*villageAccum{}
	villageOrder := make([]string, 0)
	districts := map[string]*districtAccum{}

	for _, r := range records {
		districtName := strategy.DistrictKeyOf(r)
		identity := strategy.RawIdentityOf(r)

		if districtName == "" {
			set.Skipped.MissingDistrict++
		} else {
			d, ok := districts[districtName]
			if !ok {
				d = &districtAccum{
					category:      category,
					name:          districtName,
					seen:          map[string]struct{}{},
					candidates:    map[string]*model.DistrictCandidate{},
					townshipsSeen: map[string]struct{}{},
				}
				districts[districtName] = d
			}
			c, ok := d.candidates[identity]
			if !ok {
				c = &model.DistrictCandidate{Party: r.PartyName}
				d.candidates[identity] = c
				d.order = append(d.order, identity)
			}
			c.Votes += r.Votes
			if r.TownshipName != "" {
				if _, ok := d.townshipsSeen[r.TownshipName]; !ok {
					d.townshipsSeen[r.TownshipName] = struct{}{}
					d.townships = append(d.townships, r.TownshipName)
				}
			}
			if r.GeoKey != "" && r.Electorate > 0 {
				if _, ok := d.seen[r.GeoKey]; !ok {
					d.seen[r.GeoKey] = struct{}{}
					d.electorate += r.Electorate
					d.totalVotes += r.TotalVotes
				}
			}
		}

		if r.GeoKey == "" {
			set.Skipped.MissingGeoKey++
			continue
		}
		if r.Electorate <= 0 {
			set.Skipped.MissingElectorate++
		}

		v, ok := villages[r.GeoKey]
		if !ok {
			v = &villageAccum{
				fullName:     r.FullName(),
				districtName: districtName,
			}
			villages[r.GeoKey] = v
			villageOrder = append(villageOrder, r.GeoKey)
		}
		v.votes = append(v.votes, model.CandidateVotes{
			Name:  identity,
			Party: r.PartyName,
			Votes: r.Votes,
		})
		if v.electorate == 0 && r.Electorate > 0 {
			v.electorate = r.Electorate
			v.totalVotes = r.TotalVotes
		}
	}

	for _, geoKey := range villageOrder {
		v := villages[geoKey]

		candidates := make([]model.CandidateVotes, len(v.votes))
		copy(candidates, v.votes)
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Votes > candidates[j].Votes
		})

		lean, margin := util.ClassifyLean(candidates, v.electorate)

		result := &model.VillageResult{
			GeoKey:       geoKey,
			FullName:     v.fullName,
			DistrictName: v.districtName,
			Electorate:   v.electorate,
			TotalVotes:   v.totalVotes,
			Candidates:   candidates,
			Lean:         lean,
			Margin:       margin,
		}

		if series := store.SeriesFor(geoKey, category); series != nil {
			result.SwingCount, result.Swing = trend.SwingCount(series)
		}

		if d, ok := districts[v.districtName]; ok && d.electorate > 0 && v.electorate > 0 {
			result.ElectorateShare = float64(v.electorate) / float64(d.electorate)
		}

		set.Villages[geoKey] = result
		if v.districtName != "" {
			set.VillageDistrict[geoKey] = v.districtName
		}
	}

	for name, d := range districts {
		if len(d.order) == 0 {
			continue
		}
		winner := d.order[0]
		for _, identity := range d.order[1:] {
			if d.candidates[identity].Votes > d.candidates[winner].Votes {
				winner = identity
			}
		}

		haystack := make([]string, 0, len(d.townships)+len(d.order)+1)
		haystack = append(haystack, d.townships...)
		haystack = append(haystack, d.order...)
		haystack = append(haystack, winner)

		set.Districts[name] = &model.DistrictResult{
			Category:    category,
			Name:        name,
			Electorate:  d.electorate,
			TotalVotes:  d.totalVotes,
			Candidates:  d.candidates,
			Townships:   d.townships,
			SearchText:  strings.ToLower(strings.Join(haystack, " ")),
			Winner:      winner,
			WinnerParty: d.candidates[winner].Party,
		}
	}

	return set
}

// reportSkipped surfaces exclusion counts once per aggregation instead of
// logging per row.
func reportSkipped(category string, year int, skipped model.SkipStats) {
	dataset := model.DatasetKey(category, year)
	observability.RowsSkipped.WithLabelValues("missing_geo_key", dataset).Add(float64(skipped.MissingGeoKey))
	observability.RowsSkipped.WithLabelValues("missing_district", dataset).Add(float64(skipped.MissingDistrict))
	observability.RowsSkipped.WithLabelValues("missing_electorate", dataset).Add(float64(skipped.MissingElectorate))

	if skipped.MissingGeoKey > 0 || skipped.MissingDistrict > 0 || skipped.MissingElectorate > 0 {
		log.Warn().
			Str("evt.name", "aggregation.skipped").
			Str("dataset", dataset).
			Int("missingGeoKey", skipped.MissingGeoKey).
			Int("missingDistrict", skipped.MissingDistrict).
			Int("missingElectorate", skipped.MissingElectorate).
			Msg("rows excluded from aggregation")
	}
}
