package ingestverifs

import (
	"context"

	"go.opentelemetry.io/otel"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/types"
	"votemap.tw/backend/internal/pkg/observability"
)

var tracer = otel.Tracer("ingestverifs")

type Verifier interface {
	Name() string
	Verify(ctx context.Context, record *model.VoteRecord, task *types.IngestTask) *Rejection
}

type IngestVerifiers []Verifier

func NewIngestVerifier(boundsVerifier *BoundsVerifier, rejectRuleVerifier *RejectRuleVerifier) *IngestVerifiers {
	return &IngestVerifiers{
		boundsVerifier,
		rejectRuleVerifier,
	}
}

// Verify runs every verifier over every record of a task. A record stops at
// its first violation; surviving records are the ones safe to insert.
func (verifiers IngestVerifiers) Verify(ctx context.Context, task *types.IngestTask) (violations Violations) {
	violations = map[int]*Violation{}

	for recordIndex, record := range task.Records {
		for _, pipe := range verifiers {
			name := pipe.Name()

			ctx, span := tracer.
				Start(ctx, "ingestverifs.verifier."+name)

			rejection := pipe.Verify(ctx, record, task)
			span.End()

			if rejection != nil {
				observability.IngestRowsRejected.
					WithLabelValues(name).
					Inc()

				violations[recordIndex] = &Violation{
					Name:      name,
					Rejection: *rejection,
				}

				break
			}
		}
	}

	return violations
}
