package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "votemapbackend"
)

var (
	AggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "aggregation", "duration_seconds"),
		Help:    "Duration of dataset aggregation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{"category"})
	RowsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "aggregation", "rows_skipped_total"),
		Help: "Raw vote rows excluded from aggregation, by reason",
	}, []string{"reason", "dataset"})
	IngestBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "ingest", "batch_duration_seconds"),
		Help:    "Duration of vote row batch ingestion in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{})
	IngestRowsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "ingest", "rows_rejected_total"),
		Help: "Vote rows rejected by ingest verifiers",
	}, []string{"verifier"})
	WorkerCalcDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "calc_duration_seconds"),
		Help: "Duration of last worker calculation in seconds",
	}, []string{"service", "dataset"})
)
