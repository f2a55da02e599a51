package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's balance in minor currency units. One wallet per user
// by convention. A wallet with IsDeleted set is treated as nonexistent by
// every mutating path; Balance is only ever moved by the ledger service.
type Wallet struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Balance   int64     `gorm:"not null;default:0"`
	IsDeleted bool      `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
