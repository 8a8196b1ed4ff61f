package appconfig

import (
	"time"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address of the HTTP API.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// DevMode to indicate development mode. When true, the program would spin
	// up utilities for debugging and troubleshooting, and the log level would
	// be set to trace.
	DevMode bool `split_words:"true"`

	// LogJsonStdout to indicate whether to log in JSON format to stdout,
	// instead of the default console writer.
	LogJsonStdout bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	TracingExporters []string `split_words:"true" default:"jaeger"`

	// TracingSampleRate to indicate the sampling rate of tracing.
	TracingSampleRate float64 `split_words:"true" default:"1"`

	// PostgresDSN is the data source name of the PostgreSQL database that
	// stores raw vote rows, geometries and annotations.
	PostgresDSN string `required:"true" split_words:"true"`

	// BunDebugVerbose to indicate whether to print all queries the ORM
	// executes. Only effective in DevMode.
	BunDebugVerbose bool `split_words:"true"`

	// DBMaxOpenConns is the maximum number of open connections to the database.
	DBMaxOpenConns int `split_words:"true" default:"10"`

	// DBMaxIdleConns is the maximum number of idle connections kept in the pool.
	DBMaxIdleConns int `split_words:"true" default:"2"`

	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration `split_words:"true" default:"30m"`

	// NatsURL is the URL of the NATS server used for the ingest pipeline.
	NatsURL string `required:"true" split_words:"true" default:"nats://127.0.0.1:4222"`

	// RedisURL is the URL of the Redis instance backing shared caches and
	// distributed locks.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/0"`

	// SentryDSN is the DSN of the Sentry project. Optional: leaving it empty
	// disables error reporting.
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to
	// gracefully shutdown.
	HTTPServerShutdownTimeout time.Duration `split_words:"true" default:"60s"`

	// WorkerEnabled to indicate whether to enable the background result
	// calculation worker.
	WorkerEnabled bool `split_words:"true"`

	// WorkerInterval is the interval between two full recalculation rounds.
	WorkerInterval time.Duration `split_words:"true" default:"10m"`

	// WorkerSeparation is the pause between two datasets within a round, to
	// avoid saturating the database.
	WorkerSeparation time.Duration `split_words:"true" default:"3s"`

	// WorkerTimeout is the timeout for one full recalculation round.
	WorkerTimeout time.Duration `split_words:"true" default:"5m"`

	// WorkerHeartbeatURL is an optional URL to GET after each successful
	// round, for external liveness monitoring.
	WorkerHeartbeatURL string `split_words:"true"`

	// SwingThreshold is the number of lead reversals a village's historical
	// series must exceed for the village to be marked as a swing village.
	SwingThreshold int `split_words:"true" default:"3"`
}
