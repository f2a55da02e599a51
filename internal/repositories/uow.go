package repositories

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"tixora/internal/result"
)

// Tx is one open unit of work. All repositories obtained from it share the
// same database transaction; Commit or Rollback ends it.
type Tx interface {
	Users() UserRepository
	Wallets() WalletRepository
	WalletTransactions() WalletTransactionRepository
	RefundRules() RefundRuleRepository
	RefundRuleDetails() RefundRuleDetailRepository
	Commit() error
	Rollback() error
}

// UnitOfWork opens atomic units of work over the store.
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Begin(ctx context.Context) (Tx, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return &gormTx{db: tx}, nil
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) Users() UserRepository {
	return NewUserRepository(t.db)
}

func (t *gormTx) Wallets() WalletRepository {
	return NewWalletRepository(t.db)
}

func (t *gormTx) WalletTransactions() WalletTransactionRepository {
	return NewWalletTransactionRepository(t.db)
}

func (t *gormTx) RefundRules() RefundRuleRepository {
	return NewRefundRuleRepository(t.db)
}

func (t *gormTx) RefundRuleDetails() RefundRuleDetailRepository {
	return NewRefundRuleDetailRepository(t.db)
}

func (t *gormTx) Commit() error   { return t.db.Commit().Error }
func (t *gormTx) Rollback() error { return t.db.Rollback().Error }

// RunInTx executes fn inside one unit of work.
//
// fn reports two distinct failure channels: a domain result (validation
// misses, not-found, provider refusal) and an error for storage-level
// exceptions. Domain failures commit — they wrote nothing, and they are not
// storage faults — while a non-nil error or a panic rolls every write back
// and surfaces as an internal failure.
func RunInTx[T any](ctx context.Context, uow UnitOfWork, fn func(tx Tx) (result.Result[T], error)) (res result.Result[T]) {
	tx, err := uow.Begin(ctx)
	if err != nil {
		log.Printf("failed to open unit of work: %v", err)
		return result.Fail[T](result.KindInternal, "Internal server error")
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("rollback after panic failed: %v", rbErr)
			}
			log.Printf("unit of work panicked: %v", r)
			res = result.Fail[T](result.KindInternal, "Internal server error")
		}
	}()

	res, err = fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed: %v", rbErr)
		}
		log.Printf("unit of work aborted: %v", err)
		return result.Fail[T](result.KindInternal, "Internal server error")
	}

	if err := tx.Commit(); err != nil {
		log.Printf("commit failed: %v", err)
		return result.Fail[T](result.KindInternal, "Internal server error")
	}
	return res
}
