package engine

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents an input error detected before mining starts.
//
// Validation errors include:
//   - Invalid threshold: minSupport or minConfidence outside [0, 1]
//   - Empty corpus: zero transactions supplied
//   - Malformed transaction: a transaction with an empty item token
//
// An empty Result is the legitimate "nothing frequent" answer; a
// ValidationError is always distinguishable from it.
type ValidationError struct {
	// Code identifies the error category.
	Code ValidationErrorCode

	// Message is a human-readable description.
	Message string

	// Index is the offending transaction index for malformed input, or -1.
	Index int

	// Details contains additional context.
	Details map[string]string

	// Err is the underlying cause, if any.
	Err error
}

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode string

const (
	// ErrCodeInvalidThreshold indicates a threshold outside [0, 1].
	ErrCodeInvalidThreshold ValidationErrorCode = "INVALID_THRESHOLD"

	// ErrCodeEmptyCorpus indicates zero transactions were supplied.
	ErrCodeEmptyCorpus ValidationErrorCode = "EMPTY_CORPUS"

	// ErrCodeMalformedTransaction indicates a transaction with an empty item token.
	ErrCodeMalformedTransaction ValidationErrorCode = "MALFORMED_TRANSACTION"
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s (transaction=%d)", e.Code, e.Message, e.Index)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewThresholdError creates a ValidationError for an out-of-range threshold.
func NewThresholdError(name string, value float64) *ValidationError {
	formatted := strconv.FormatFloat(value, 'g', -1, 64)
	return &ValidationError{
		Code:    ErrCodeInvalidThreshold,
		Message: fmt.Sprintf("%s must be within [0, 1], got %s", name, formatted),
		Index:   -1,
		Details: map[string]string{
			"threshold": name,
			"value":     formatted,
		},
	}
}

// NewEmptyCorpusError creates a ValidationError for a corpus with no transactions.
func NewEmptyCorpusError() *ValidationError {
	return &ValidationError{
		Code:    ErrCodeEmptyCorpus,
		Message: "at least one transaction is required",
		Index:   -1,
	}
}

// NewMalformedError creates a ValidationError for the transaction at index.
func NewMalformedError(index int, cause error) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeMalformedTransaction,
		Message: fmt.Sprintf("malformed transaction: %v", cause),
		Index:   index,
		Details: map[string]string{
			"index": strconv.Itoa(index),
		},
		Err: cause,
	}
}

// IsValidationError returns true if err is any ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsThresholdError returns true if the error is an invalid threshold error.
// Uses errors.As to handle wrapped errors.
func IsThresholdError(err error) bool {
	return hasCode(err, ErrCodeInvalidThreshold)
}

// IsEmptyCorpusError returns true if the error is an empty corpus error.
func IsEmptyCorpusError(err error) bool {
	return hasCode(err, ErrCodeEmptyCorpus)
}

// IsMalformedError returns true if the error is a malformed transaction error.
func IsMalformedError(err error) bool {
	return hasCode(err, ErrCodeMalformedTransaction)
}

func hasCode(err error, code ValidationErrorCode) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}
