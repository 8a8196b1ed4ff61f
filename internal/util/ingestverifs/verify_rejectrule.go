package ingestverifs

import (
	"context"
	"time"

	"github.com/antonmedv/expr"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/types"
	"votemap.tw/backend/internal/repo"
)

// RejectRuleVerifier evaluates editorial expr rules from the property table
// against each row, so bad source files can be fenced off without a deploy.
type RejectRuleVerifier struct {
	PropertyRepo *repo.Property
}

// ensure RejectRuleVerifier conforms to Verifier
var _ Verifier = (*RejectRuleVerifier)(nil)

func NewRejectRuleVerifier(propertyRepo *repo.Property) *RejectRuleVerifier {
	return &RejectRuleVerifier{
		PropertyRepo: propertyRepo,
	}
}

func (d *RejectRuleVerifier) Name() string {
	return "reject_rule"
}

type RejectRule struct {
	Name string `json:"name"`
	Expr string `json:"expr"`
}

type RecordContext struct {
	Record *model.VoteRecord
	Task   *types.IngestTask
}

func (d *RejectRuleVerifier) rules(ctx context.Context) []*RejectRule {
	property, err := d.PropertyRepo.GetPropertyByKey(ctx, constant.PropertyIngestRejectRules)
	if err != nil {
		return nil
	}

	var rules []*RejectRule
	if err := json.Unmarshal([]byte(property.Value), &rules); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal ingest reject rules")
		return nil
	}
	return rules
}

func (d *RejectRuleVerifier) Verify(ctx context.Context, record *model.VoteRecord, task *types.IngestTask) *Rejection {
	rules := d.rules(ctx)
	if len(rules) == 0 {
		return nil
	}

	recordContext := RecordContext{
		Record: record,
		Task:   task,
	}

	start := time.Now()
	defer func() {
		if l := log.Trace(); l.Enabled() {
			l.Dur("duration", time.Since(start)).
				Msg("reject rule(s) evaluated")
		}
	}()

	for _, rule := range rules {
		result, err := expr.Eval(rule.Expr, recordContext)
		if err != nil {
			log.Error().
				Err(err).
				Str("rule", rule.Name).
				Msg("failed to evaluate reject rule")
			continue
		}

		if matched, ok := result.(bool); ok && matched {
			return &Rejection{
				Message: "row matched reject rule " + rule.Name,
			}
		}
	}

	return nil
}
