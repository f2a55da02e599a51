package wallet

import (
	"context"

	"github.com/google/uuid"

	"tixora/internal/models"
)

// Config holds the URLs the provider redirects to after checkout.
type Config struct {
	TopUpDescription string
	CancelURL        string
	ReturnURL        string
}

// CacheOperator is the slice of the cache this service needs for wallet reads.
type CacheOperator interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, bool)
	CacheWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uuid.UUID) error
}

// noopCache satisfies CacheOperator when no cache is wired (tests).
type noopCache struct{}

func (noopCache) GetWallet(context.Context, uuid.UUID) (*models.Wallet, bool) { return nil, false }
func (noopCache) CacheWallet(context.Context, *models.Wallet) error           { return nil }
func (noopCache) InvalidateWallet(context.Context, uuid.UUID) error           { return nil }
