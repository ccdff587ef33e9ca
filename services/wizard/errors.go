package wizard

import "fmt"

// ValidationError blocks an action without being fatal: the session stays
// intact and the caller can correct the input.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// SessionNotFoundError means the session was never created, expired, or was
// already consumed by a successful submission.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("booking session %s not found or expired", e.SessionID)
}
