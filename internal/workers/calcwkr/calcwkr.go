package calcwkr

import (
	"context"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/app/appconfig"
	"votemap.tw/backend/internal/model/cache"
	"votemap.tw/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	ElectionService *service.Election
	ResultService   *service.Result
	HistoryService  *service.History
	GeometryService *service.Geometry
}

type Worker struct {
	// count counts rounds the worker has completed so far
	count int

	// sep is the pause in-between datasets within a round
	sep time.Duration

	// interval is the pause in-between rounds
	interval time.Duration

	// timeout bounds one full round
	timeout time.Duration

	heartbeatURL string

	mutex *redsync.Mutex

	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps, rs *redsync.Redsync) {
	if !conf.WorkerEnabled {
		log.Info().Msg("worker is disabled")
		return
	}
	(&Worker{
		sep:          conf.WorkerSeparation,
		interval:     conf.WorkerInterval,
		timeout:      conf.WorkerTimeout,
		heartbeatURL: conf.WorkerHeartbeatURL,
		mutex:        rs.NewMutex("mutex:calcwkr", redsync.WithExpiry(conf.WorkerTimeout)),
		WorkerDeps:   deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	parentCtx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			func() {
				// only one instance may recalculate at a time
				if err := w.mutex.Lock(); err != nil {
					log.Debug().Err(err).Msg("worker: another instance holds the lock")
					return
				}
				defer func() {
					if _, err := w.mutex.Unlock(); err != nil {
						log.Warn().Err(err).Msg("worker: failed to release lock")
					}
				}()

				ctx, cancelRound := context.WithTimeout(parentCtx, w.timeout)
				defer cancelRound()

				log.Info().
					Int("count", w.count).
					Msg("worker round started")

				if err := w.round(ctx); err != nil {
					log.Error().Err(err).Int("count", w.count).Msg("worker round failed")
					return
				}

				log.Info().Int("count", w.count).Msg("worker round finished")
				w.heartbeat()
			}()

			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}

func (w *Worker) round(ctx context.Context) error {
	// recompute into fresh caches rather than serving half-flushed state
	if err := cache.ResultSets.Flush(); err != nil {
		return err
	}
	if err := cache.DistrictWinners.Flush(); err != nil {
		return err
	}
	if err := cache.HistoryStores.Flush(); err != nil {
		return err
	}
	if err := cache.GeoJSON.Flush(); err != nil {
		return err
	}

	datasets, err := w.ElectionService.ListDatasets(ctx)
	if err != nil {
		return err
	}

	for _, dataset := range datasets {
		dataset := dataset
		log.Info().Str("dataset", dataset.Key()).Msg("worker calculating")

		if err := observeCalcDuration("result", dataset.Key(), func() error {
			_, err := w.ResultService.GetResultSet(ctx, dataset.Category, dataset.Year)
			return err
		}); err != nil {
			log.Error().Err(err).Str("dataset", dataset.Key()).Msg("worker: result calculation failed")
			continue
		}

		if err := observeCalcDuration("geojson", dataset.Key(), func() error {
			_, err := w.GeometryService.GetStyledGeoJSON(ctx, dataset.Category, dataset.Year)
			return err
		}); err != nil {
			log.Error().Err(err).Str("dataset", dataset.Key()).Msg("worker: geojson calculation failed")
			continue
		}

		log.Debug().Str("dataset", dataset.Key()).Msg("worker finished")
		time.Sleep(w.sep)
	}

	// the blended store is what results and charts read
	return observeCalcDuration("history", "all", func() error {
		_, err := w.HistoryService.GetStore(ctx, true)
		return err
	})
}

func (w *Worker) heartbeat() {
	if w.heartbeatURL == "" {
		return
	}
	err := retry.Do(func() error {
		resp, err := http.Get(w.heartbeatURL)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		return nil
	}, retry.Attempts(5))
	if err != nil {
		log.Error().Err(err).Msg("worker: failed to send heartbeat")
	}
}

func (w *Worker) Count() int {
	return w.count
}
