package calcwkr

import (
	"time"

	"votemap.tw/backend/internal/pkg/observability"
)

func observeCalcDuration(service string, dataset string, f func() error) error {
	start := time.Now()
	defer func() {
		dur := time.Since(start)
		observability.WorkerCalcDuration.WithLabelValues(service, dataset).Set(float64(dur.Seconds()))
	}()
	return f()
}
