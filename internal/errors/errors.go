// Package errors provides structured error types for gatebench.
// All errors carry a category, code and message so callers can branch on
// what failed without matching strings.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by component.
type ErrorCategory string

const (
	ErrCategoryValidation ErrorCategory = "VALIDATION"
	ErrCategoryConfig     ErrorCategory = "CONFIG"
	ErrCategoryReport     ErrorCategory = "REPORT"
	ErrCategoryInternal   ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Validation codes
	CodeInvalidPopulation = "INVALID_POPULATION"
	CodeInvalidPasses     = "INVALID_PASSES"
	CodeUnknownVariant    = "UNKNOWN_VARIANT"
	CodeNoVariants        = "NO_VARIANTS"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"

	// Config codes
	CodeReadFailed  = "READ_FAILED"
	CodeParseFailed = "PARSE_FAILED"

	// Report codes
	CodeWriteFailed = "WRITE_FAILED"

	// Internal codes
	CodeCancelled  = "CANCELLED"
	CodeUnexpected = "UNEXPECTED"
)

// GateBenchError is the structured error type used throughout the module.
type GateBenchError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Details  map[string]interface{}
	Cause    error
}

// Error returns a formatted error string.
func (e *GateBenchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *GateBenchError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *GateBenchError) Is(target error) bool {
	var t *GateBenchError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new GateBenchError.
func New(category ErrorCategory, code, message string) *GateBenchError {
	return &GateBenchError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// Wrap creates a new GateBenchError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *GateBenchError {
	return &GateBenchError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *GateBenchError) WithDetails(details map[string]interface{}) *GateBenchError {
	cp := *e
	cp.Details = details
	return &cp
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not a GateBenchError.
func GetCategory(err error) ErrorCategory {
	var ge *GateBenchError
	if errors.As(err, &ge) {
		return ge.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
// Returns empty string if the error is not a GateBenchError.
func GetCode(err error) string {
	var ge *GateBenchError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

// Convenience constructors for common errors.

func NewValidationError(code, message string) *GateBenchError {
	return New(ErrCategoryValidation, code, message)
}

func NewConfigError(code, message string, cause error) *GateBenchError {
	return Wrap(ErrCategoryConfig, code, message, cause)
}

func NewReportError(message string, cause error) *GateBenchError {
	return Wrap(ErrCategoryReport, CodeWriteFailed, message, cause)
}

func NewInternalError(message string, cause error) *GateBenchError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
