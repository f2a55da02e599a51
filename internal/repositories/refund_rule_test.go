package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every rule read must carry the deleted_at IS NULL predicate so soft-deleted
// rows never surface; these tests pin the generated SQL.

const (
	ruleByIDQuery     = `SELECT * FROM "refund_rules" WHERE id = $1 AND deleted_at IS NULL`
	ruleCountQuery    = `SELECT count(*) FROM "refund_rules" WHERE deleted_at IS NULL`
	ruleListQuery     = `SELECT * FROM "refund_rules" WHERE deleted_at IS NULL`
	detailByIDQuery   = `SELECT * FROM "refund_rule_details" WHERE id = $1 AND deleted_at IS NULL`
	detailPreloadExpr = `FROM "refund_rule_details" WHERE .*deleted_at IS NULL`
)

func ruleRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "rule_name", "rule_description", "deleted_at", "created_at", "updated_at"}).
		AddRow(id.String(), "Standard", "Tiered refunds", nil, time.Now(), time.Now())
}

func detailRows(id, ruleID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "refund_rule_id", "min_days_before_event", "max_days_before_event", "refund_percent", "deleted_at"}).
		AddRow(id.String(), ruleID.String(), 1, 5, 50, nil)
}

func TestRefundRuleRepository_GetActiveByID_FiltersSoftDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefundRuleRepository(db)
	ruleID := uuid.New()
	detailID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(ruleByIDQuery)).
		WillReturnRows(ruleRows(ruleID))
	// The tier preload must carry the same filter so deleted tiers stay
	// invisible under a live rule.
	mock.ExpectQuery(detailPreloadExpr).
		WillReturnRows(detailRows(detailID, ruleID))

	rule, err := repo.GetActiveByID(context.Background(), ruleID)

	require.NoError(t, err)
	assert.Equal(t, ruleID, rule.ID)
	require.Len(t, rule.Details, 1)
	assert.Equal(t, detailID, rule.Details[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefundRuleRepository_GetActiveByID_DeletedRuleIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefundRuleRepository(db)

	// A soft-deleted rule is filtered out by the predicate and surfaces as
	// zero rows.
	mock.ExpectQuery(regexp.QuoteMeta(ruleByIDQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rule, err := repo.GetActiveByID(context.Background(), uuid.New())

	assert.Nil(t, rule)
	assert.ErrorIs(t, err, ErrRuleNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefundRuleRepository_ListActive_FiltersSoftDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefundRuleRepository(db)
	ruleID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(ruleCountQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(ruleListQuery)).
		WillReturnRows(ruleRows(ruleID))
	mock.ExpectQuery(detailPreloadExpr).
		WillReturnRows(detailRows(uuid.New(), ruleID))

	rules, total, err := repo.ListActive(context.Background(), 10, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rules, 1)
	assert.Equal(t, ruleID, rules[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefundRuleDetailRepository_GetActiveByID_FiltersSoftDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefundRuleDetailRepository(db)
	detailID := uuid.New()
	ruleID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(detailByIDQuery)).
		WillReturnRows(detailRows(detailID, ruleID))

	detail, err := repo.GetActiveByID(context.Background(), detailID)

	require.NoError(t, err)
	assert.Equal(t, detailID, detail.ID)
	assert.Equal(t, ruleID, detail.RefundRuleID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefundRuleDetailRepository_GetActiveByID_DeletedDetailIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefundRuleDetailRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(detailByIDQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	detail, err := repo.GetActiveByID(context.Background(), uuid.New())

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrRuleDetailNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
