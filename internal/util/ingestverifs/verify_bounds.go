package ingestverifs

import (
	"context"
	"fmt"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/types"
)

// BoundsVerifier rejects rows whose counts cannot describe a real village:
// negative votes, more cast votes than electors, or an unknown category.
type BoundsVerifier struct{}

// ensure BoundsVerifier conforms to Verifier
var _ Verifier = (*BoundsVerifier)(nil)

func NewBoundsVerifier() *BoundsVerifier {
	return &BoundsVerifier{}
}

func (d *BoundsVerifier) Name() string {
	return "bounds"
}

func (d *BoundsVerifier) Verify(ctx context.Context, record *model.VoteRecord, task *types.IngestTask) *Rejection {
	if !constant.ValidCategory(record.Category) {
		return &Rejection{
			Message: fmt.Sprintf("unknown category %q", record.Category),
		}
	}
	if record.Year < 1996 || record.Year > 2100 {
		return &Rejection{
			Message: fmt.Sprintf("year %d out of range", record.Year),
		}
	}
	if record.Votes < 0 {
		return &Rejection{
			Message: "negative vote count",
		}
	}
	if record.Electorate < 0 || record.TotalVotes < 0 {
		return &Rejection{
			Message: "negative electorate or cast total",
		}
	}
	if record.Electorate > 0 && record.TotalVotes > record.Electorate {
		return &Rejection{
			Message: fmt.Sprintf("cast total %d exceeds electorate %d", record.TotalVotes, record.Electorate),
		}
	}
	if record.Electorate > 0 && record.Votes > record.TotalVotes {
		return &Rejection{
			Message: fmt.Sprintf("candidate votes %d exceed cast total %d", record.Votes, record.TotalVotes),
		}
	}
	return nil
}
