package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies failures so the HTTP layer and callers can distinguish
// transient conditions (retry encouraged) from terminal ones (input must be
// corrected).
type Kind int

const (
	KindValidation Kind = iota
	KindServiceNotReady
	KindRetrieval
	KindInternal
)

type AppError struct {
	Kind    Kind
	Message string
	Fields  map[string]string // per-field validation details, optional
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller should back off and retry the same
// request unchanged.
func (e *AppError) Retryable() bool {
	return e.Kind == KindServiceNotReady || e.Kind == KindRetrieval
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindServiceNotReady:
		return fiber.StatusServiceUnavailable
	case KindRetrieval:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewValidationFields(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

func NewServiceNotReady(message string) *AppError {
	return &AppError{Kind: KindServiceNotReady, Message: message}
}

func NewRetrieval(message string, err error) *AppError {
	return &AppError{Kind: KindRetrieval, Message: message, Err: err}
}

func NewInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// As unwraps err into an *AppError when possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
