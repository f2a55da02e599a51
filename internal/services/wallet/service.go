package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tixora/internal/models"
	"tixora/internal/repositories"
	"tixora/internal/result"
	"tixora/internal/services/paymentlink"
	"tixora/internal/validation"
)

// Service orchestrates the wallet ledger.
type Service interface {
	// CreateTopUp opens a provisional top-up: it requests a payment link from
	// the provider and appends one pending ledger row. The balance does not
	// move until the provider confirms payment, which happens outside this
	// service.
	CreateTopUp(ctx context.Context, userID uuid.UUID, amount int64) result.Result[paymentlink.PaymentLinkInfo]

	// GetWallet reads a wallet through the cache.
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)

	// GetTransactionHistory pages the ledger rows of a user's wallet.
	GetTransactionHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.WalletTransaction, int64, error)
}

type service struct {
	uow      repositories.UnitOfWork
	wallets  repositories.WalletRepository
	txns     repositories.WalletTransactionRepository
	provider paymentlink.Provider
	cache    CacheOperator
	config   Config
}

// NewService creates a new wallet service.
func NewService(
	uow repositories.UnitOfWork,
	wallets repositories.WalletRepository,
	txns repositories.WalletTransactionRepository,
	provider paymentlink.Provider,
	cache CacheOperator,
	config Config,
) Service {
	if uow == nil {
		panic("unit of work is required")
	}
	if wallets == nil {
		panic("wallet repository is required")
	}
	if txns == nil {
		panic("wallet transaction repository is required")
	}
	if provider == nil {
		panic("payment link provider is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	if config.TopUpDescription == "" {
		config.TopUpDescription = "Wallet top up"
	}

	return &service{
		uow:      uow,
		wallets:  wallets,
		txns:     txns,
		provider: provider,
		cache:    cache,
		config:   config,
	}
}

func (s *service) CreateTopUp(ctx context.Context, userID uuid.UUID, amount int64) result.Result[paymentlink.PaymentLinkInfo] {
	// Malformed input never reaches storage.
	if verr := validation.ValidateTopUpInput(userID, amount); verr != nil {
		return result.FailErr[paymentlink.PaymentLinkInfo](verr)
	}

	res := repositories.RunInTx(ctx, s.uow, func(tx repositories.Tx) (result.Result[paymentlink.PaymentLinkInfo], error) {
		_, err := tx.Users().GetActiveByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return result.Fail[paymentlink.PaymentLinkInfo](result.KindNotFound, "User not found or deleted"), nil
			}
			return result.Result[paymentlink.PaymentLinkInfo]{}, err
		}

		wlt, err := tx.Wallets().GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return result.Fail[paymentlink.PaymentLinkInfo](result.KindNotFound, "Wallet not found or deleted"), nil
			}
			return result.Result[paymentlink.PaymentLinkInfo]{}, err
		}

		info, perr := s.createPaymentLink(ctx, paymentlink.CreatePaymentLinkRequest{
			Amount:      amount,
			Description: s.config.TopUpDescription,
			OrderCode:   newOrderCode(),
			CancelURL:   s.config.CancelURL,
			ReturnURL:   s.config.ReturnURL,
		})
		if perr != nil {
			// Provider faults are reported once, not retried; nothing has
			// been written at this point.
			return result.Fail[paymentlink.PaymentLinkInfo](result.KindInternal,
				fmt.Sprintf("Failed to create payment link: %v", perr)), nil
		}

		// Both snapshots equal the current balance: the top-up is provisional
		// until external confirmation moves the money.
		txn := &models.WalletTransaction{
			WalletID:      wlt.ID,
			OrderCode:     fmt.Sprintf("%d", info.OrderCode),
			Amount:        amount,
			BalanceBefore: wlt.Balance,
			BalanceAfter:  wlt.Balance,
			Type:          models.TransactionTypeTopup,
			Direction:     models.TransactionDirectionIn,
			Status:        models.TransactionStatusPending,
			Description:   s.config.TopUpDescription,
			ReferenceID:   userID,
			ReferenceType: models.ReferenceTypeTopUpRequest,
			CreatedBy:     userID,
		}
		if err := tx.WalletTransactions().Create(ctx, txn); err != nil {
			return result.Result[paymentlink.PaymentLinkInfo]{}, err
		}

		return result.Ok(*info), nil
	})

	if res.IsSuccess() {
		s.cache.InvalidateWallet(ctx, userID)
	}
	return res
}

// createPaymentLink shields the orchestrator from a panicking provider; a
// panic is reported the same way as a returned error.
func (s *service) createPaymentLink(ctx context.Context, req paymentlink.CreatePaymentLinkRequest) (info *paymentlink.PaymentLinkInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()
	return s.provider.CreatePaymentLink(ctx, req)
}

func (s *service) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	if wlt, ok := s.cache.GetWallet(ctx, userID); ok {
		return wlt, nil
	}

	wlt, err := s.wallets.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.CacheWallet(ctx, wlt)
	return wlt, nil
}

func (s *service) GetTransactionHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.WalletTransaction, int64, error) {
	wlt, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return s.txns.GetByWalletID(ctx, wlt.ID, limit, offset)
}

// newOrderCode mints a provider-facing numeric order code. Millisecond
// resolution keeps codes unique per wallet in practice; the provider is the
// source of truth for the code it echoes back.
func newOrderCode() int64 {
	return time.Now().UnixMilli()
}
