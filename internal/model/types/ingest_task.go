package types

import (
	"time"

	"votemap.tw/backend/internal/model"
)

// IngestTask is one batch of raw vote rows queued for verification and
// insertion, published to JetStream by the importer.
type IngestTask struct {
	TaskID string `json:"taskId"`
	Source string `json:"source"`

	Category string `json:"category"`
	Year     int    `json:"year"`

	Records []*model.VoteRecord `json:"records"`

	CreatedAt time.Time `json:"createdAt"`
}
