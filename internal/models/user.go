package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity projection this service reads. The identity subsystem
// owns the row; only the status flags matter here.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	Password  string    `gorm:"not null"`
	IsActive  bool      `gorm:"default:true"`
	IsDeleted bool      `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
