package models

import (
	"time"

	"github.com/google/uuid"
)

// RefundRule is the header of a tiered refund policy an organizer attaches to
// an event. Rows are soft-deleted by stamping DeletedAt; read paths filter on
// deleted_at IS NULL explicitly.
type RefundRule struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RuleName        string    `gorm:"not null"`
	RuleDescription string    `gorm:"not null"`
	DeletedAt       *time.Time
	Details         []RefundRuleDetail `gorm:"foreignKey:RefundRuleID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RefundRuleDetail is one tier: cancel between Min and Max days before the
// event and RefundPercent of the ticket price is returned. Tiers within one
// rule are validated independently; overlap across tiers is not checked.
type RefundRuleDetail struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RefundRuleID       uuid.UUID `gorm:"type:uuid;not null;index"`
	MinDaysBeforeEvent int       `gorm:"not null"`
	MaxDaysBeforeEvent int       `gorm:"not null"`
	RefundPercent      int       `gorm:"not null"`
	DeletedAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
