package cache

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"gopkg.in/guregu/null.v3"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/pkg/cache"
	"votemap.tw/backend/internal/repo"
)

type Flusher func() error

var (
	// Datasets is the list of loaded (category, year) pairs.
	Datasets *cache.Singular[[]*model.Dataset]

	// Records holds the raw rows of one dataset, keyed by "category|year".
	Records *cache.Set[[]*model.VoteRecord]

	// ResultSets holds aggregated village and district results per dataset.
	ResultSets *cache.Set[model.ResultSet]

	// DistrictWinners maps district name to winning party per dataset, the
	// preload the flip analysis resolves side correspondence from.
	DistrictWinners *cache.Set[map[string]model.DistrictCandidate]

	// HistoryStores holds per-village historical series, keyed by "raw" or
	// "blended" depending on whether reference-category years are merged in.
	HistoryStores *cache.Set[model.HistoryStore]

	FlipSummaries *cache.Set[model.FlipSummary]

	// GeoJSON holds the merged FeatureCollection with lean colors injected,
	// keyed by "category|year".
	GeoJSON *cache.Set[json.RawMessage]

	LastModifiedTime *cache.Set[time.Time]

	Properties map[string]string

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize(client *redis.Client, propertyRepo *repo.Property) {
	once.Do(func() {
		initializeCaches(client)
		populateProperties(propertyRepo)
	})
}

func Delete(name string, key null.String) error {
	if key.Valid {
		if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	} else {
		if _, ok := SingularFlusherMap[name]; ok {
			if err := SingularFlusherMap[name](); err != nil {
				return err
			}
		} else if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	}
	return nil
}

func initializeCaches(client *redis.Client) {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// dataset
	Datasets = cache.NewSingular[[]*model.Dataset]("datasets")

	SingularFlusherMap["datasets"] = Datasets.Flush

	// vote_record
	Records = cache.NewSet[[]*model.VoteRecord](client, "records#category|year")

	SetMap["records#category|year"] = Records.Flush

	// result
	ResultSets = cache.NewSet[model.ResultSet](client, "resultSet#category|year")
	DistrictWinners = cache.NewSet[map[string]model.DistrictCandidate](client, "districtWinners#category|year")

	SetMap["resultSet#category|year"] = ResultSets.Flush
	SetMap["districtWinners#category|year"] = DistrictWinners.Flush

	// history
	HistoryStores = cache.NewSet[model.HistoryStore](client, "historyStore#blend")

	SetMap["historyStore#blend"] = HistoryStores.Flush

	// flip
	FlipSummaries = cache.NewSet[model.FlipSummary](client, "flipSummary#baseline|comparison")

	SetMap["flipSummary#baseline|comparison"] = FlipSummaries.Flush

	// geometry
	GeoJSON = cache.NewSet[json.RawMessage](client, "geoJson#category|year")

	SetMap["geoJson#category|year"] = GeoJSON.Flush

	// others
	LastModifiedTime = cache.NewSet[time.Time](client, "lastModifiedTime#key")

	SetMap["lastModifiedTime#key"] = LastModifiedTime.Flush
}

func populateProperties(repo *repo.Property) {
	Properties = make(map[string]string)
	properties, err := repo.GetProperties(context.Background())
	if err != nil {
		panic(err)
	}

	for _, property := range properties {
		Properties[property.Key] = property.Value
	}
}
