package vss

import (
	"fmt"
)

// ErrorCategory represents the category of a secret sharing error
type ErrorCategory string

const (
	ErrorCategoryValidation    ErrorCategory = "validation"
	ErrorCategoryThreshold     ErrorCategory = "threshold"
	ErrorCategoryShare         ErrorCategory = "share"
	ErrorCategoryCommitment    ErrorCategory = "commitment"
	ErrorCategoryArithmetic    ErrorCategory = "arithmetic"
	ErrorCategoryCryptographic ErrorCategory = "cryptographic"
	ErrorCategoryInternal      ErrorCategory = "internal"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	ErrorSeverityLow      ErrorSeverity = "low"      // Non-critical, operation can continue
	ErrorSeverityMedium   ErrorSeverity = "medium"   // Important, may affect functionality
	ErrorSeverityHigh     ErrorSeverity = "high"     // Critical, operation should stop
	ErrorSeverityCritical ErrorSeverity = "critical" // System-level failure
)

// SharingError represents a structured error in the secret sharing library
type SharingError struct {
	Category    ErrorCategory          `json:"category"`
	Severity    ErrorSeverity          `json:"severity"`
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	Cause       error                  `json:"-"` // Original error, not serialized
	Context     map[string]interface{} `json:"context,omitempty"`
	Recoverable bool                   `json:"recoverable"`
}

// Error implements the error interface
func (e *SharingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *SharingError) Unwrap() error {
	return e.Cause
}

// Is matches errors by code so copies produced by WithContext/WithDetails
// still compare equal to the package sentinels under errors.Is.
func (e *SharingError) Is(target error) bool {
	other, ok := target.(*SharingError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// WithContext adds context information to the error
func (e *SharingError) WithContext(key string, value interface{}) *SharingError {
	newError := e.clone()
	newError.Context[key] = value
	return newError
}

// WithDetails sets human-readable detail text on a copy of the error
func (e *SharingError) WithDetails(format string, args ...interface{}) *SharingError {
	newError := e.clone()
	newError.Details = fmt.Sprintf(format, args...)
	return newError
}

// WithCause sets the underlying cause of the error
func (e *SharingError) WithCause(cause error) *SharingError {
	newError := e.clone()
	newError.Cause = cause
	return newError
}

// IsRecoverable returns whether the error is recoverable
func (e *SharingError) IsRecoverable() bool {
	return e.Recoverable
}

// clone copies the error so fluent setters never mutate shared sentinels
func (e *SharingError) clone() *SharingError {
	newError := &SharingError{
		Category:    e.Category,
		Severity:    e.Severity,
		Code:        e.Code,
		Message:     e.Message,
		Details:     e.Details,
		Cause:       e.Cause,
		Recoverable: e.Recoverable,
		Context:     make(map[string]interface{}),
	}
	for k, v := range e.Context {
		newError.Context[k] = v
	}
	return newError
}

// NewSharingError creates a new secret sharing error
func NewSharingError(category ErrorCategory, severity ErrorSeverity, code, message string) *SharingError {
	return &SharingError{
		Category:    category,
		Severity:    severity,
		Code:        code,
		Message:     message,
		Context:     make(map[string]interface{}),
		Recoverable: severity != ErrorSeverityCritical,
	}
}

// Parameter Errors
var (
	ErrInvalidThreshold = NewSharingError(
		ErrorCategoryThreshold, ErrorSeverityHigh, "INVALID_THRESHOLD",
		"threshold must be at least 1")

	ErrThresholdTooHigh = NewSharingError(
		ErrorCategoryThreshold, ErrorSeverityHigh, "THRESHOLD_TOO_HIGH",
		"threshold exceeds total share count")

	ErrSecretOutOfRange = NewSharingError(
		ErrorCategoryValidation, ErrorSeverityHigh, "SECRET_OUT_OF_RANGE",
		"secret is not an element of the working field")

	ErrInvalidModulus = NewSharingError(
		ErrorCategoryValidation, ErrorSeverityHigh, "INVALID_MODULUS",
		"field modulus is invalid")

	ErrInvalidGroupParameters = NewSharingError(
		ErrorCategoryValidation, ErrorSeverityHigh, "INVALID_GROUP_PARAMETERS",
		"commitment group parameters are invalid")
)

// Share Errors
var (
	ErrInsufficientShares = NewSharingError(
		ErrorCategoryShare, ErrorSeverityHigh, "INSUFFICIENT_SHARES",
		"not enough shares to reach the reconstruction threshold")

	ErrDuplicateShare = NewSharingError(
		ErrorCategoryShare, ErrorSeverityHigh, "DUPLICATE_SHARE",
		"two supplied shares carry the same index")

	ErrMalformedShare = NewSharingError(
		ErrorCategoryShare, ErrorSeverityMedium, "MALFORMED_SHARE",
		"share is missing its index or value")

	ErrInconsistentShares = NewSharingError(
		ErrorCategoryShare, ErrorSeverityHigh, "INCONSISTENT_SHARES",
		"share subsets reconstruct different secrets")
)

// Commitment Errors
var (
	ErrMalformedCommitmentSet = NewSharingError(
		ErrorCategoryCommitment, ErrorSeverityHigh, "MALFORMED_COMMITMENT_SET",
		"commitment count does not match the expected threshold")
)

// Arithmetic and Cryptographic Errors
var (
	ErrNonInvertibleElement = NewSharingError(
		ErrorCategoryArithmetic, ErrorSeverityCritical, "NON_INVERTIBLE_ELEMENT",
		"element has no multiplicative inverse modulo the field modulus")

	ErrRandomnessGeneration = NewSharingError(
		ErrorCategoryCryptographic, ErrorSeverityCritical, "RANDOMNESS_GENERATION_FAILED",
		"failed to draw secure randomness")
)

// WrapError wraps an existing error with secret sharing error context
func WrapError(err error, category ErrorCategory, severity ErrorSeverity, code, message string) *SharingError {
	return NewSharingError(category, severity, code, message).WithCause(err)
}

// IsErrorCategory checks if an error belongs to a specific category
func IsErrorCategory(err error, category ErrorCategory) bool {
	if sharingErr, ok := err.(*SharingError); ok {
		return sharingErr.Category == category
	}
	return false
}

// IsErrorSeverity checks if an error has a specific severity
func IsErrorSeverity(err error, severity ErrorSeverity) bool {
	if sharingErr, ok := err.(*SharingError); ok {
		return sharingErr.Severity == severity
	}
	return false
}

// IsRecoverableError checks if an error is recoverable
func IsRecoverableError(err error) bool {
	if sharingErr, ok := err.(*SharingError); ok {
		return sharingErr.IsRecoverable()
	}
	return true // Non-structured errors are assumed recoverable
}

// GetErrorContext extracts context from a structured error
func GetErrorContext(err error) map[string]interface{} {
	if sharingErr, ok := err.(*SharingError); ok {
		return sharingErr.Context
	}
	return nil
}
