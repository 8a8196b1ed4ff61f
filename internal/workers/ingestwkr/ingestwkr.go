package ingestwkr

import (
	"context"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/cache"
	"votemap.tw/backend/internal/model/types"
	"votemap.tw/backend/internal/pkg/observability"
	"votemap.tw/backend/internal/repo"
	"votemap.tw/backend/internal/util/ingestverifs"
)

type WorkerDeps struct {
	fx.In
	NatsJS          nats.JetStreamContext
	VoteRecordRepo  *repo.VoteRecord
	IngestVerifiers *ingestverifs.IngestVerifiers
}

type Worker struct {
	// count is the number of spawned consumers
	count int

	WorkerDeps
}

func Start(deps WorkerDeps) {
	ch := make(chan error)
	// handle & dump errors from workers
	go func() {
		for {
			err := <-ch
			if err != nil {
				log.Error().Err(err).Msg("ingest worker error")
			}
		}
	}()
	ingestWorkers := &Worker{
		count:      0,
		WorkerDeps: deps,
	}
	for i := 0; i < runtime.NumCPU(); i++ {
		go func() {
			err := ingestWorkers.Consumer(context.Background(), ch)
			if err != nil {
				ch <- err
			}
		}()
		ingestWorkers.count += 1
	}
}

func (w *Worker) Consumer(ctx context.Context, ch chan error) error {
	msgChan := make(chan *nats.Msg, 16)

	_, err := w.NatsJS.ChanQueueSubscribe("INGEST.*", "votemap-ingest", msgChan, nats.AckWait(time.Second*10), nats.MaxAckPending(128))
	if err != nil {
		log.Err(err).Msg("failed to subscribe to INGEST.*")
		return err
	}

	for {
		select {
		case msg := <-msgChan:
			func() {
				taskCtx, cancelTask := context.WithDeadline(ctx, time.Now().Add(time.Second*30))
				inprogressInformer := time.AfterFunc(time.Second*5, func() {
					err = msg.InProgress()
					if err != nil {
						log.Error().Err(err).Msg("failed to set msg InProgress")
					}
				})
				defer func() {
					inprogressInformer.Stop()
					cancelTask()
					if err := msg.Ack(); err != nil {
						log.Error().Err(err).Msg("failed to ack")
					}
				}()

				task := &types.IngestTask{}
				if err := json.Unmarshal(msg.Data, task); err != nil {
					ch <- err
					return
				}

				err = w.consumeTask(taskCtx, task)
				if err != nil {
					log.Error().
						Err(err).
						Str("taskId", task.TaskID).
						Str("task", spew.Sdump(task)).
						Msg("failed to consume ingest task")
					ch <- err
					return
				}

				log.Info().Str("taskId", task.TaskID).Msg("ingest task processed successfully")
			}()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) consumeTask(ctx context.Context, task *types.IngestTask) error {
	L := log.With().
		Str("taskId", task.TaskID).
		Str("dataset", model.DatasetKey(task.Category, task.Year)).
		Int("records", len(task.Records)).
		Logger()

	L.Info().Msg("now processing new ingest task")

	start := time.Now()
	defer func() {
		observability.IngestBatchDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	}()

	violations := w.IngestVerifiers.Verify(ctx, task)
	accepted := make([]*model.VoteRecord, 0, len(task.Records))
	for i, record := range task.Records {
		if violation, ok := violations[i]; ok {
			L.Warn().
				Int("index", i).
				Str("verifier", violation.Name).
				Str("message", violation.Message).
				Msg("record rejected")
			continue
		}
		accepted = append(accepted, record)
	}

	if len(accepted) == 0 {
		L.Warn().Msg("every record of the task was rejected")
		return nil
	}

	if err := w.VoteRecordRepo.BatchInsert(ctx, accepted); err != nil {
		return err
	}

	// ingested rows invalidate every derived aggregate
	if err := cache.Records.Flush(); err != nil {
		return err
	}
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
	if err := cache.FlipSummaries.Flush(); err != nil {
		return err
	}
	if err := cache.Datasets.Flush(); err != nil {
		return err
	}

	L.Info().Int("accepted", len(accepted)).Msg("ingest task inserted")
	return nil
}
