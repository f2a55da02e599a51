package validation

import (
	"github.com/google/uuid"

	"tixora/internal/result"
)

// ValidateTopUpInput rejects malformed top-up input before any storage access.
func ValidateTopUpInput(userID uuid.UUID, amount int64) *result.Error {
	if userID == uuid.Nil {
		return &result.Error{Kind: result.KindInvalidInput, Message: "Invalid input"}
	}
	if amount <= 0 {
		return &result.Error{Kind: result.KindInvalidInput, Message: "Amount must be greater than zero"}
	}
	return nil
}

// RequireID rejects an empty identifier on update/delete paths.
func RequireID(id uuid.UUID) *result.Error {
	if id == uuid.Nil {
		return &result.Error{Kind: result.KindInvalidInput, Message: "Invalid input"}
	}
	return nil
}
