package usecase

import (
	"errors"
	"strings"
)

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInvalidDate        = "INVALID_DATE"
	CodeEmptySlug          = "EMPTY_SLUG"
	CodeSlugConflict       = "SLUG_CONFLICT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"

	CodeStoreError       = "STORE_ERROR"
	CodeAggregationError = "AGGREGATION_ERROR"
)

var (
	ErrEmptySlug = &DomainError{
		Code:    CodeEmptySlug,
		Message: "slug source text has no usable characters",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    CodeInvalidCredentials,
		Message: "invalid credentials",
	}
)

// DomainError is a caller mistake: bad input, bad credentials, bad state.
type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError wraps infrastructure failures; the message never reaches
// the client.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func newValidationError(fields []ValidationError) *DomainError {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Error())
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
		Fields:  fields,
	}
}

func storeError(msg string, err error) *TechnicalError {
	return &TechnicalError{Code: CodeStoreError, Message: msg, Err: err}
}
