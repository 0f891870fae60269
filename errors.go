package gotodo

import (
	"errors"
	"fmt"
	"time"
)

// Error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// TodoError represents an error raised by a store operation
type TodoError struct {
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	ID        uint32    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface
func (e *TodoError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("[%s] %s (id: %d)", e.Code, e.Message, e.ID)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewNotFoundError creates the error returned by any by-id lookup when the
// key is absent.
func NewNotFoundError(id uint32) *TodoError {
	return &TodoError{
		Message:   "todo not found",
		Code:      ErrCodeNotFound,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// NewInternalError wraps a backend failure that is not part of the store's
// error taxonomy (marshalling problems, transport errors).
func NewInternalError(message string, err error) *TodoError {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &TodoError{
		Message:   message,
		Code:      ErrCodeInternalError,
		Timestamp: time.Now(),
	}
}

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var te *TodoError
	if errors.As(err, &te) {
		return te.Code == ErrCodeNotFound
	}
	return false
}
