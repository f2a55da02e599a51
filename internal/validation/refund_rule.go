package validation

import (
	"fmt"
	"strings"

	"tixora/internal/models"
	"tixora/internal/result"
)

// ValidateCreateRefundRule checks a create-rule request field by field.
// The first failing check wins; later checks are not evaluated.
func ValidateCreateRefundRule(req models.CreateRefundRuleInput) *result.Error {
	if strings.TrimSpace(req.RuleName) == "" {
		return &result.Error{Kind: result.KindInvalidInput, Message: "Rule name is required"}
	}
	if strings.TrimSpace(req.RuleDescription) == "" {
		return &result.Error{Kind: result.KindInvalidInput, Message: "Rule description is required"}
	}
	if req.RuleRefundDetails == nil {
		return &result.Error{Kind: result.KindInvalidInput, Message: "Refund rule details are required"}
	}
	for _, detail := range req.RuleRefundDetails {
		if err := ValidateRefundRuleDetail(detail); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRefundRuleDetail checks one tier: presence first, then the percent
// bound, then the day-range ordering.
func ValidateRefundRuleDetail(detail models.RefundRuleDetailInput) *result.Error {
	if detail.MinDaysBeforeEvent == nil {
		return &result.Error{Kind: result.KindInvalidInput, Message: "MinDaysBeforeEvent is required"}
	}
	if detail.MaxDaysBeforeEvent == nil {
		return &result.Error{Kind: result.KindInvalidInput, Message: "MaxDaysBeforeEvent is required"}
	}
	if detail.RefundPercent == nil {
		return &result.Error{Kind: result.KindInvalidInput, Message: "RefundPercent is required"}
	}
	return validateDetailRanges(detail.MinDaysBeforeEvent, detail.MaxDaysBeforeEvent, detail.RefundPercent)
}

// ValidateRefundRuleDetailPartial re-runs the range checks for an update
// request where absent fields keep their stored values.
func ValidateRefundRuleDetailPartial(minDays, maxDays, percent *int) *result.Error {
	return validateDetailRanges(minDays, maxDays, percent)
}

func validateDetailRanges(minDays, maxDays, percent *int) *result.Error {
	if percent != nil && (*percent < 0 || *percent > 100) {
		return &result.Error{Kind: result.KindInvalidInput, Message: "RefundPercent must be between 0 and 100"}
	}
	if minDays != nil && maxDays != nil && *minDays > *maxDays {
		return &result.Error{
			Kind:    result.KindInvalidInput,
			Message: fmt.Sprintf("MinDays (%d) cannot be greater than MaxDays (%d)", *minDays, *maxDays),
		}
	}
	return nil
}
