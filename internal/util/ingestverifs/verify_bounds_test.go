package ingestverifs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
)

func TestBoundsVerifier(t *testing.T) {
	t.Parallel()

	verifier := NewBoundsVerifier()
	ctx := context.Background()

	valid := func() *model.VoteRecord {
		return &model.VoteRecord{
			Category:   constant.CategoryMayor,
			Year:       2022,
			GeoKey:     "V1",
			Votes:      600,
			Electorate: 1000,
			TotalVotes: 950,
		}
	}

	assert.Nil(t, verifier.Verify(ctx, valid(), nil))

	t.Run("zero electorate tolerated", func(t *testing.T) {
		r := valid()
		r.Electorate = 0
		r.TotalVotes = 0
		assert.Nil(t, verifier.Verify(ctx, r, nil), "sources omit totals on administrative rows")
	})

	cases := []struct {
		name   string
		mutate func(*model.VoteRecord)
	}{
		{"unknown category", func(r *model.VoteRecord) { r.Category = "senate" }},
		{"year below range", func(r *model.VoteRecord) { r.Year = 1992 }},
		{"year above range", func(r *model.VoteRecord) { r.Year = 2101 }},
		{"negative votes", func(r *model.VoteRecord) { r.Votes = -1 }},
		{"negative electorate", func(r *model.VoteRecord) { r.Electorate = -5 }},
		{"cast exceeds electorate", func(r *model.VoteRecord) { r.TotalVotes = 1001 }},
		{"votes exceed cast", func(r *model.VoteRecord) { r.Votes = 951 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := valid()
			tc.mutate(r)
			assert.NotNil(t, verifier.Verify(ctx, r, nil))
		})
	}
}
