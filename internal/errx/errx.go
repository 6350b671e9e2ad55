package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// InvalidQuestionMessage is returned to clients whose question is unusable.
	InvalidQuestionMessage = "Invalid question"
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "Internal server error"
	// RateLimitedMessage is returned when a client exceeds its request budget.
	RateLimitedMessage = "Too many requests"
)

var (
	ErrMissingQuestion = errors.New("question is required")
	ErrQuestionNotText = errors.New("question must be a string")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

func InvalidQuestion(err error) *AppError {
	return New(err, http.StatusBadRequest, InvalidQuestionMessage)
}

func Internal(err error) *AppError {
	return New(err, http.StatusInternalServerError, SystemErrorMessage)
}

func RateLimited() *AppError {
	return New(nil, http.StatusTooManyRequests, RateLimitedMessage)
}

// From returns err as an AppError, treating anything unrecognised as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
