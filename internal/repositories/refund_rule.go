package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tixora/internal/models"
)

// RefundRuleRepository accesses rule headers. Reads filter deleted_at IS NULL
// explicitly; soft-deleted rules behave as missing.
type RefundRuleRepository interface {
	Create(ctx context.Context, rule *models.RefundRule) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.RefundRule, error)
	Update(ctx context.Context, rule *models.RefundRule) error
	ListActive(ctx context.Context, limit, offset int) ([]models.RefundRule, int64, error)
}

// RefundRuleDetailRepository accesses individual tiers under the same
// soft-delete discipline.
type RefundRuleDetailRepository interface {
	Create(ctx context.Context, detail *models.RefundRuleDetail) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.RefundRuleDetail, error)
	Update(ctx context.Context, detail *models.RefundRuleDetail) error
}

type refundRuleRepository struct {
	db *gorm.DB
}

func NewRefundRuleRepository(db *gorm.DB) RefundRuleRepository {
	return &refundRuleRepository{db: db}
}

// Create persists the rule and cascades its tiers in one insert.
func (r *refundRuleRepository) Create(ctx context.Context, rule *models.RefundRule) error {
	if err := r.db.WithContext(ctx).Create(rule).Error; err != nil {
		return fmt.Errorf("failed to create refund rule: %w", err)
	}
	return nil
}

func (r *refundRuleRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.RefundRule, error) {
	var rule models.RefundRule
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		Preload("Details", "deleted_at IS NULL").
		First(&rule).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get refund rule: %w", err)
	}
	return &rule, nil
}

func (r *refundRuleRepository) Update(ctx context.Context, rule *models.RefundRule) error {
	err := r.db.WithContext(ctx).Omit("Details").Save(rule).Error
	if err != nil {
		return fmt.Errorf("failed to update refund rule: %w", err)
	}
	return nil
}

func (r *refundRuleRepository) ListActive(ctx context.Context, limit, offset int) ([]models.RefundRule, int64, error) {
	var rules []models.RefundRule
	var total int64

	q := r.db.WithContext(ctx).Model(&models.RefundRule{}).Where("deleted_at IS NULL")
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count refund rules: %w", err)
	}
	err := q.Order("created_at DESC").
		Preload("Details", "deleted_at IS NULL").
		Limit(limit).Offset(offset).
		Find(&rules).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list refund rules: %w", err)
	}
	return rules, total, nil
}

type refundRuleDetailRepository struct {
	db *gorm.DB
}

func NewRefundRuleDetailRepository(db *gorm.DB) RefundRuleDetailRepository {
	return &refundRuleDetailRepository{db: db}
}

func (r *refundRuleDetailRepository) Create(ctx context.Context, detail *models.RefundRuleDetail) error {
	if err := r.db.WithContext(ctx).Create(detail).Error; err != nil {
		return fmt.Errorf("failed to create refund rule detail: %w", err)
	}
	return nil
}

func (r *refundRuleDetailRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.RefundRuleDetail, error) {
	var detail models.RefundRuleDetail
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&detail).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRuleDetailNotFound
		}
		return nil, fmt.Errorf("failed to get refund rule detail: %w", err)
	}
	return &detail, nil
}

func (r *refundRuleDetailRepository) Update(ctx context.Context, detail *models.RefundRuleDetail) error {
	if err := r.db.WithContext(ctx).Save(detail).Error; err != nil {
		return fmt.Errorf("failed to update refund rule detail: %w", err)
	}
	return nil
}
