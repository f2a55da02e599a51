// Package refundrule manages the tiered refund policies of the ticketing
// platform: rule headers and their day-range tiers, created and edited inside
// one unit of work per operation, soft-deleted rather than removed.
package refundrule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"tixora/internal/models"
	"tixora/internal/repositories"
	"tixora/internal/result"
	"tixora/internal/utils"
	"tixora/internal/validation"
)

// Service orchestrates refund-rule management.
type Service interface {
	CreateRule(ctx context.Context, req models.CreateRefundRuleInput) result.Result[uuid.UUID]
	UpdateRule(ctx context.Context, req models.UpdateRefundRuleInput) result.Result[uuid.UUID]
	DeleteRule(ctx context.Context, id uuid.UUID) result.Result[uuid.UUID]
	CreateRuleDetail(ctx context.Context, ruleID uuid.UUID, req models.RefundRuleDetailInput) result.Result[uuid.UUID]
	UpdateRuleDetail(ctx context.Context, req models.UpdateRefundRuleDetailInput) result.Result[uuid.UUID]
	DeleteRuleDetail(ctx context.Context, id uuid.UUID) result.Result[uuid.UUID]
	GetRuleRefund(ctx context.Context, page, pageSize int) result.Result[utils.Page[RuleSummary]]
}

type service struct {
	uow   repositories.UnitOfWork
	rules repositories.RefundRuleRepository
	cache CacheOperator
}

// NewService creates a new refund-rule service.
func NewService(uow repositories.UnitOfWork, rules repositories.RefundRuleRepository, cache CacheOperator) Service {
	if uow == nil {
		panic("unit of work is required")
	}
	if rules == nil {
		panic("refund rule repository is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	return &service{uow: uow, rules: rules, cache: cache}
}

func (s *service) CreateRule(ctx context.Context, req models.CreateRefundRuleInput) result.Result[uuid.UUID] {
	if verr := validation.ValidateCreateRefundRule(req); verr != nil {
		return result.FailErr[uuid.UUID](verr)
	}

	res := repositories.RunInTx(ctx, s.uow, func(tx repositories.Tx) (result.Result[uuid.UUID], error) {
		rule := mapRule(req)
		if rule == nil {
			return result.Fail[uuid.UUID](result.KindInternal, "Failed to map refund rule"), nil
		}
		if err := tx.RefundRules().Create(ctx, rule); err != nil {
			return result.Result[uuid.UUID]{}, err
		}
		return result.Ok(rule.ID), nil
	})

	if res.IsSuccess() {
		s.cache.InvalidateRulePages(ctx)
	}
	return res
}

func (s *service) UpdateRule(ctx context.Context, req models.UpdateRefundRuleInput) result.Result[uuid.UUID] {
	if verr := validation.RequireID(req.ID); verr != nil {
		return result.FailErr[uuid.UUID](verr)
	}

	res := repositories.RunInTx(ctx, s.uow, func(tx repositories.Tx) (result.Result[uuid.UUID], error) {
		rule, err := tx.RefundRules().GetActiveByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrRuleNotFound) {
				return result.Fail[uuid.UUID](result.KindInvalidInput, "Rule not found or inactive"), nil
			}
			return result.Result[uuid.UUID]{}, err
		}

		if req.RuleName != "" {
			rule.RuleName = req.RuleName
		}
		if req.RuleDescription != "" {
			rule.RuleDescription = req.RuleDescription
		}
		if err := tx.RefundRules().Update(ctx, rule); err != nil {
			return result.Result[uuid.UUID]{}, err
		}
		return result.Ok(rule.ID), nil
	})

	if res.IsSuccess() {
		s.cache.InvalidateRulePages(ctx)
	}
	return res
}

func (s *service) DeleteRule(ctx context.Context, id uuid.UUID) result.Result[uuid.UUID] {
	if verr := validation.RequireID(id); verr != nil {
		return result.FailErr[uuid.UUID](verr)
	}

	res := repositories.RunInTx(ctx, s.uow, func(tx repositories.Tx) (result.Result[uuid.UUID], error) {
		rule, err := tx.RefundRules().GetActiveByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrRuleNotFound) {
				return result.Fail[uuid.UUID](result.KindInvalidInput, "Rule not found"), nil
			}
			return result.Result[uuid.UUID]{}, err
		}

		now := time.Now().UTC()
		rule.DeletedAt = &now
		if err := tx.RefundRules().Update(ctx, rule); err != nil {
			return result.Result[uuid.UUID]{}, err
		}
		return result.Ok(rule.ID), nil
	})

	if res.IsSuccess() {
		s.cache.InvalidateRulePages(ctx)
	}
	return res
}

func (s *service) CreateRuleDetail(ctx context.Context, ruleID uuid.UUID, req models.RefundRuleDetailInput) result.Result[uuid.UUID] {
	if verr := validation.RequireID(ruleID); verr != nil {
		return result.FailErr[uuid.UUID](verr)
	}
	if verr := validation.ValidateRefundRuleDetail(req); verr != nil {
		return result.FailErr[uuid.UUID](verr)
	}

	res := repositories.RunInTx(ctx, s.uow, func(tx repositories.Tx) (result.Result[uuid.UUID], error) {
		_, err := tx.RefundRules().GetActiveByID(ctx, ruleID)
		if err != nil {
			if errors.Is(err, repositories.ErrRuleNotFound) {
				return result.Fail[uuid.UUID](result.KindInvalidInput, "Rule not found or inactive"), nil
			}
			return result.Result[uuid.UUID]{}, err
		}

		detail := &models.RefundRuleDetail{
			RefundRuleID:       ruleID,
			MinDaysBeforeEvent: *req.MinDaysBeforeEvent,
			MaxDaysBeforeEvent: *req.MaxDaysBeforeEvent,
			RefundPercent:      *req.RefundPercent,
		}
		if err := tx.RefundRuleDetails().Create(ctx, detail); err != nil {
			return result.Result[uuid.UUID]{}, err
		}
		return result.Ok(detail.ID), nil
	})

	if res.IsSuccess() {
		s.cache.InvalidateRulePages(ctx)
	}
	return res
}

func (s *service) UpdateRuleDetail(ctx context.Context, req models.UpdateRefundRuleDetailInput) result.Result[uuid.UUID] {
	if verr := validation.RequireID(req.ID); verr != nil {
		return result.FailErr[uuid.UUID](verr)
	}
	// Range checks run against the incoming partial request before any
	// storage access.
	if verr := validation.ValidateRefundRuleDetailPartial(req.MinDaysBeforeEvent, req.MaxDaysBeforeEvent, req.RefundPercent); verr != nil {
		return result.FailErr[uuid.UUID](verr)
	}

	res := repositories.RunInTx(ctx, s.uow, func(tx repositories.Tx) (result.Result[uuid.UUID], error) {
		detail, err := tx.RefundRuleDetails().GetActiveByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrRuleDetailNotFound) {
				return result.Fail[uuid.UUID](result.KindInvalidInput, "Rule detail not found"), nil
			}
			return result.Result[uuid.UUID]{}, err
		}

		if req.MinDaysBeforeEvent != nil {
			detail.MinDaysBeforeEvent = *req.MinDaysBeforeEvent
		}
		if req.MaxDaysBeforeEvent != nil {
			detail.MaxDaysBeforeEvent = *req.MaxDaysBeforeEvent
		}
		if req.RefundPercent != nil {
			detail.RefundPercent = *req.RefundPercent
		}
		if err := tx.RefundRuleDetails().Update(ctx, detail); err != nil {
			return result.Result[uuid.UUID]{}, err
		}
		return result.Ok(detail.ID), nil
	})

	if res.IsSuccess() {
		s.cache.InvalidateRulePages(ctx)
	}
	return res
}

func (s *service) DeleteRuleDetail(ctx context.Context, id uuid.UUID) result.Result[uuid.UUID] {
	if verr := validation.RequireID(id); verr != nil {
		return result.FailErr[uuid.UUID](verr)
	}

	res := repositories.RunInTx(ctx, s.uow, func(tx repositories.Tx) (result.Result[uuid.UUID], error) {
		detail, err := tx.RefundRuleDetails().GetActiveByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrRuleDetailNotFound) {
				return result.Fail[uuid.UUID](result.KindInvalidInput, "Rule detail not found or inactive"), nil
			}
			return result.Result[uuid.UUID]{}, err
		}

		now := time.Now().UTC()
		detail.DeletedAt = &now
		if err := tx.RefundRuleDetails().Update(ctx, detail); err != nil {
			return result.Result[uuid.UUID]{}, err
		}
		return result.Ok(detail.ID), nil
	})

	if res.IsSuccess() {
		s.cache.InvalidateRulePages(ctx)
	}
	return res
}

func (s *service) GetRuleRefund(ctx context.Context, page, pageSize int) result.Result[utils.Page[RuleSummary]] {
	page, pageSize = utils.NormalizePaging(page, pageSize)

	cacheKey := s.cache.RulePageKey(page, pageSize)
	if cacheKey != "" {
		var cached utils.Page[RuleSummary]
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return result.Ok(cached)
		}
	}

	rules, total, err := s.rules.ListActive(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return result.Fail[utils.Page[RuleSummary]](result.KindInternal, "Internal server error")
	}

	summaries := make([]RuleSummary, 0, len(rules))
	for _, rule := range rules {
		summaries = append(summaries, summarize(rule))
	}

	// An empty page is still a success.
	pageRes := utils.NewPage(summaries, page, pageSize, total)
	if cacheKey != "" {
		s.cache.Set(ctx, cacheKey, pageRes)
	}
	return result.Ok(pageRes)
}

// mapRule builds the entity graph from a validated request. A nil return is
// the misconfigured-mapper guard the orchestrator checks for.
func mapRule(req models.CreateRefundRuleInput) *models.RefundRule {
	rule := &models.RefundRule{
		RuleName:        req.RuleName,
		RuleDescription: req.RuleDescription,
	}
	for _, d := range req.RuleRefundDetails {
		if d.MinDaysBeforeEvent == nil || d.MaxDaysBeforeEvent == nil || d.RefundPercent == nil {
			return nil
		}
		rule.Details = append(rule.Details, models.RefundRuleDetail{
			MinDaysBeforeEvent: *d.MinDaysBeforeEvent,
			MaxDaysBeforeEvent: *d.MaxDaysBeforeEvent,
			RefundPercent:      *d.RefundPercent,
		})
	}
	return rule
}
