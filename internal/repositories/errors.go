package repositories

import "errors"

// Sentinel lookup errors. "Not found" covers soft-deleted rows too: a row
// filtered out by the deleted predicate is indistinguishable from a missing
// one to callers.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrRuleNotFound       = errors.New("refund rule not found")
	ErrRuleDetailNotFound = errors.New("refund rule detail not found")
)
