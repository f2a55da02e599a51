package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TransactionTypeTopup      = "TOPUP"
	TransactionTypePayment    = "PAYMENT"
	TransactionTypeRefund     = "REFUND"
	TransactionTypeWithdrawal = "WITHDRAWAL"
)

// Transaction directions
const (
	TransactionDirectionIn  = "IN"
	TransactionDirectionOut = "OUT"
)

// Transaction statuses
const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

// Reference types linking a ledger row back to the request that produced it.
const (
	ReferenceTypeTopUpRequest = "TopUpRequest"
	ReferenceTypeOrder        = "Order"
)

// WalletTransaction is one row of the append-only ledger. It is written
// exactly once and never mutated here; status transitions belong to the
// reconciliation flow that consumes provider callbacks.
type WalletTransaction struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	WalletID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderCode     string    `gorm:"not null"`
	Amount        int64     `gorm:"not null"`
	BalanceBefore int64     `gorm:"not null"`
	BalanceAfter  int64     `gorm:"not null"`
	Type          string    `gorm:"not null"`
	Direction     string    `gorm:"not null"`
	Status        string    `gorm:"not null;default:'PENDING'"`
	Description   string
	ReferenceID   uuid.UUID `gorm:"type:uuid"`
	ReferenceType string
	CreatedBy     uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
}
