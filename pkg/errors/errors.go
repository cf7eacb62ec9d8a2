package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeExternalAPI
	ErrorTypeCache

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used throughout the adapters
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	ExternalAPIError   = ErrorTypeExternalAPI
	CacheError         = ErrorTypeCache
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Infrastructure Error Constructors
func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewCacheError(message string, cause error) *AppError {
	return Wrap(CacheError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

func isType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return isType(err, NotFoundError)
}

func IsValidationError(err error) bool {
	return isType(err, ValidationError)
}

func IsCacheError(err error) bool {
	return isType(err, CacheError)
}

func IsConfigurationError(err error) bool {
	return isType(err, ConfigurationError)
}

// FetchReason classifies why an upstream UV fetch failed
type FetchReason string

const (
	FetchReasonUpstreamStatus    FetchReason = "upstream-status"
	FetchReasonMalformedResponse FetchReason = "malformed-response"
	FetchReasonTransport         FetchReason = "transport"
)

// FetchError is returned by UV providers when the primary request cannot produce a snapshot
type FetchError struct {
	Provider string
	Reason   FetchReason
	Status   int
	Cause    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s fetch failed: %s", e.Provider, e.Reason)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func NewUpstreamStatusError(provider string, status int) *FetchError {
	return &FetchError{Provider: provider, Reason: FetchReasonUpstreamStatus, Status: status}
}

func NewMalformedResponseError(provider string, cause error) *FetchError {
	return &FetchError{Provider: provider, Reason: FetchReasonMalformedResponse, Cause: cause}
}

func NewTransportError(provider string, cause error) *FetchError {
	return &FetchError{Provider: provider, Reason: FetchReasonTransport, Cause: cause}
}

// AsFetchError extracts a FetchError from an error chain
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if stderrors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// IsFetchReason reports whether err carries a FetchError with the given reason
func IsFetchReason(err error, reason FetchReason) bool {
	fetchErr, ok := AsFetchError(err)
	return ok && fetchErr.Reason == reason
}
