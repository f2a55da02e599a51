package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tixora/internal/models"
	"tixora/internal/result"
)

func intPtr(v int) *int { return &v }

func TestValidateCreateRefundRule(t *testing.T) {
	valid := func() models.CreateRefundRuleInput {
		return models.CreateRefundRuleInput{
			RuleName:        "Standard",
			RuleDescription: "Tiers by cancellation window",
			RuleRefundDetails: []models.RefundRuleDetailInput{
				{MinDaysBeforeEvent: intPtr(0), MaxDaysBeforeEvent: intPtr(3), RefundPercent: intPtr(0)},
				{MinDaysBeforeEvent: intPtr(4), MaxDaysBeforeEvent: intPtr(30), RefundPercent: intPtr(100)},
			},
		}
	}

	t.Run("accepts a complete request", func(t *testing.T) {
		require.Nil(t, ValidateCreateRefundRule(valid()))
	})

	t.Run("accepts overlapping tiers", func(t *testing.T) {
		req := valid()
		req.RuleRefundDetails[1].MinDaysBeforeEvent = intPtr(2)
		require.Nil(t, ValidateCreateRefundRule(req))
	})

	t.Run("accepts empty but non-nil details", func(t *testing.T) {
		req := valid()
		req.RuleRefundDetails = []models.RefundRuleDetailInput{}
		require.Nil(t, ValidateCreateRefundRule(req))
	})

	tests := []struct {
		name    string
		mutate  func(*models.CreateRefundRuleInput)
		wantMsg string
	}{
		{
			name:    "blank name",
			mutate:  func(r *models.CreateRefundRuleInput) { r.RuleName = "   " },
			wantMsg: "Rule name is required",
		},
		{
			name:    "blank description",
			mutate:  func(r *models.CreateRefundRuleInput) { r.RuleDescription = "\t" },
			wantMsg: "Rule description is required",
		},
		{
			name:    "nil details",
			mutate:  func(r *models.CreateRefundRuleInput) { r.RuleRefundDetails = nil },
			wantMsg: "Refund rule details are required",
		},
		{
			// Name check runs first even when details are broken too.
			name: "name failure wins over detail failure",
			mutate: func(r *models.CreateRefundRuleInput) {
				r.RuleName = ""
				r.RuleRefundDetails[0].RefundPercent = intPtr(500)
			},
			wantMsg: "Rule name is required",
		},
		{
			name: "second tier failure surfaces",
			mutate: func(r *models.CreateRefundRuleInput) {
				r.RuleRefundDetails[1].MaxDaysBeforeEvent = nil
			},
			wantMsg: "MaxDaysBeforeEvent is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := ValidateCreateRefundRule(req)

			require.NotNil(t, err)
			assert.Equal(t, result.KindInvalidInput, err.Kind)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestValidateRefundRuleDetail(t *testing.T) {
	tests := []struct {
		name    string
		detail  models.RefundRuleDetailInput
		wantMsg string
	}{
		{
			name:    "missing min days",
			detail:  models.RefundRuleDetailInput{MaxDaysBeforeEvent: intPtr(5), RefundPercent: intPtr(50)},
			wantMsg: "MinDaysBeforeEvent is required",
		},
		{
			name:    "missing max days",
			detail:  models.RefundRuleDetailInput{MinDaysBeforeEvent: intPtr(1), RefundPercent: intPtr(50)},
			wantMsg: "MaxDaysBeforeEvent is required",
		},
		{
			name:    "missing percent",
			detail:  models.RefundRuleDetailInput{MinDaysBeforeEvent: intPtr(1), MaxDaysBeforeEvent: intPtr(5)},
			wantMsg: "RefundPercent is required",
		},
		{
			// Percent bound is checked before the day-range ordering.
			name: "percent check precedes range check",
			detail: models.RefundRuleDetailInput{
				MinDaysBeforeEvent: intPtr(9),
				MaxDaysBeforeEvent: intPtr(4),
				RefundPercent:      intPtr(101),
			},
			wantMsg: "RefundPercent must be between 0 and 100",
		},
		{
			name: "min above max",
			detail: models.RefundRuleDetailInput{
				MinDaysBeforeEvent: intPtr(9),
				MaxDaysBeforeEvent: intPtr(4),
				RefundPercent:      intPtr(50),
			},
			wantMsg: "MinDays (9) cannot be greater than MaxDays (4)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRefundRuleDetail(tt.detail)

			require.NotNil(t, err)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}

	t.Run("boundary percents pass", func(t *testing.T) {
		for _, p := range []int{0, 100} {
			err := ValidateRefundRuleDetail(models.RefundRuleDetailInput{
				MinDaysBeforeEvent: intPtr(1),
				MaxDaysBeforeEvent: intPtr(1),
				RefundPercent:      intPtr(p),
			})
			require.Nil(t, err)
		}
	})
}

func TestValidateRefundRuleDetailPartial(t *testing.T) {
	t.Run("all absent is valid", func(t *testing.T) {
		require.Nil(t, ValidateRefundRuleDetailPartial(nil, nil, nil))
	})

	t.Run("single side of range is valid", func(t *testing.T) {
		require.Nil(t, ValidateRefundRuleDetailPartial(intPtr(9), nil, nil))
		require.Nil(t, ValidateRefundRuleDetailPartial(nil, intPtr(2), nil))
	})

	t.Run("present fields are still bounded", func(t *testing.T) {
		err := ValidateRefundRuleDetailPartial(nil, nil, intPtr(-3))
		require.NotNil(t, err)
		assert.Equal(t, "RefundPercent must be between 0 and 100", err.Message)

		err = ValidateRefundRuleDetailPartial(intPtr(6), intPtr(2), nil)
		require.NotNil(t, err)
		assert.Equal(t, "MinDays (6) cannot be greater than MaxDays (2)", err.Message)
	})
}

func TestValidateTopUpInput(t *testing.T) {
	userID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		require.Nil(t, ValidateTopUpInput(userID, 1))
	})

	t.Run("nil user id", func(t *testing.T) {
		err := ValidateTopUpInput(uuid.Nil, 1000)
		require.NotNil(t, err)
		assert.Equal(t, "Invalid input", err.Message)
	})

	tests := []struct {
		name   string
		amount int64
	}{
		{"zero amount", 0},
		{"negative amount", -500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopUpInput(userID, tt.amount)

			require.NotNil(t, err)
			assert.Equal(t, result.KindInvalidInput, err.Kind)
			assert.Equal(t, "Amount must be greater than zero", err.Message)
		})
	}
}

func TestRequireID(t *testing.T) {
	require.Nil(t, RequireID(uuid.New()))

	err := RequireID(uuid.Nil)
	require.NotNil(t, err)
	assert.Equal(t, result.KindInvalidInput, err.Kind)
	assert.Equal(t, "Invalid input", err.Message)
}
