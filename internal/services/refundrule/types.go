package refundrule

import (
	"context"

	"github.com/google/uuid"

	"tixora/internal/models"
)

// TierSummary is one tier as returned by the listing endpoint.
type TierSummary struct {
	ID                 uuid.UUID `json:"id"`
	MinDaysBeforeEvent int       `json:"min_days_before_event"`
	MaxDaysBeforeEvent int       `json:"max_days_before_event"`
	RefundPercent      int       `json:"refund_percent"`
}

// RuleSummary is one refund rule with its live tiers.
type RuleSummary struct {
	ID              uuid.UUID     `json:"id"`
	RuleName        string        `json:"rule_name"`
	RuleDescription string        `json:"rule_description"`
	Details         []TierSummary `json:"details"`
}

func summarize(rule models.RefundRule) RuleSummary {
	details := make([]TierSummary, 0, len(rule.Details))
	for _, d := range rule.Details {
		details = append(details, TierSummary{
			ID:                 d.ID,
			MinDaysBeforeEvent: d.MinDaysBeforeEvent,
			MaxDaysBeforeEvent: d.MaxDaysBeforeEvent,
			RefundPercent:      d.RefundPercent,
		})
	}
	return RuleSummary{
		ID:              rule.ID,
		RuleName:        rule.RuleName,
		RuleDescription: rule.RuleDescription,
		Details:         details,
	}
}

// CacheOperator is the slice of the cache this service needs for rule pages.
type CacheOperator interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	RulePageKey(page, pageSize int) string
	InvalidateRulePages(ctx context.Context) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, interface{}) error         { return nil }
func (noopCache) RulePageKey(page, pageSize int) string                  { return "" }
func (noopCache) InvalidateRulePages(context.Context) error              { return nil }
