package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy carrying extra diagnostic fields, so the shared
// sentinel values are never mutated.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithMessage returns a copy with a more specific message.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

// Is matches by code so errors.Is works across WithDetails/WithMessage copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}
