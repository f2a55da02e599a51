package models

import "github.com/google/uuid"

// RefundRuleDetailInput is one tier of an incoming create/update request.
// Pointer fields distinguish "absent" from zero so presence checks can run
// before range checks.
type RefundRuleDetailInput struct {
	MinDaysBeforeEvent *int `json:"min_days_before_event"`
	MaxDaysBeforeEvent *int `json:"max_days_before_event"`
	RefundPercent      *int `json:"refund_percent"`
}

// CreateRefundRuleInput is the request body for creating a rule with its tiers.
type CreateRefundRuleInput struct {
	RuleName          string                  `json:"rule_name"`
	RuleDescription   string                  `json:"rule_description"`
	RuleRefundDetails []RefundRuleDetailInput `json:"rule_refund_details"`
}

// UpdateRefundRuleInput is a partial update of a rule header.
type UpdateRefundRuleInput struct {
	ID              uuid.UUID `json:"id"`
	RuleName        string    `json:"rule_name"`
	RuleDescription string    `json:"rule_description"`
}

// UpdateRefundRuleDetailInput is a partial update of a single tier.
type UpdateRefundRuleDetailInput struct {
	ID                 uuid.UUID `json:"id"`
	MinDaysBeforeEvent *int      `json:"min_days_before_event"`
	MaxDaysBeforeEvent *int      `json:"max_days_before_event"`
	RefundPercent      *int      `json:"refund_percent"`
}
