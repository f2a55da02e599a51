// Package result defines the uniform operation result returned by every
// orchestrator. Expected domain failures travel as values, never as panics
// or raw errors past the service boundary.
package result

// Kind classifies a domain failure.
type Kind string

const (
	KindInvalidInput Kind = "INVALID_INPUT"
	KindNotFound     Kind = "NOT_FOUND"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInternal     Kind = "INTERNAL_SERVER_ERROR"
)

// Error is a classified domain error with a stable, caller-visible message.
type Error struct {
	Kind    Kind   `json:"status_code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Result is the outcome of an orchestrated operation: either a value or a
// classified error, never both.
type Result[T any] struct {
	Value T      `json:"value,omitempty"`
	Err   *Error `json:"error,omitempty"`
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Fail builds a failed result with the given kind and message.
func Fail[T any](kind Kind, message string) Result[T] {
	return Result[T]{Err: &Error{Kind: kind, Message: message}}
}

// FailErr builds a failed result from an existing classified error.
func FailErr[T any](err *Error) Result[T] {
	return Result[T]{Err: err}
}

// IsSuccess reports whether the operation produced a value.
func (r Result[T]) IsSuccess() bool {
	return r.Err == nil
}
