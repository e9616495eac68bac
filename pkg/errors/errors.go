package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad      ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid   ErrorCode = "CONFIG_INVALID"
	ErrGameRootInvalid ErrorCode = "GAME_ROOT_INVALID"

	// Registry errors
	ErrNameAlreadyExists      ErrorCode = "NAME_ALREADY_EXISTS"
	ErrModNotFound            ErrorCode = "MOD_NOT_FOUND"
	ErrInvalidStateTransition ErrorCode = "INVALID_STATE_TRANSITION"

	// Conflict errors
	ErrDuplicatePath ErrorCode = "DUPLICATE_PATH"
	ErrPathConflict  ErrorCode = "PATH_CONFLICT"

	// Transfer errors
	ErrDriftDetected ErrorCode = "DRIFT_DETECTED"
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"

	// Persistence errors
	ErrLedgerCorrupt ErrorCode = "LEDGER_CORRUPT"
	ErrLockHeld      ErrorCode = "LOCK_HELD"
	ErrIO            ErrorCode = "IO_ERROR"
)

// VaporError represents a structured error with code and details
type VaporError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VaporError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VaporError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VaporError) Is(target error) bool {
	var targetErr *VaporError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VaporError with the given code and message
func New(code ErrorCode, message string) *VaporError {
	return &VaporError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VaporError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VaporError {
	return &VaporError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VaporError
func Wrap(err error, code ErrorCode, message string) *VaporError {
	if err == nil {
		return nil
	}
	return &VaporError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VaporError {
	if err == nil {
		return nil
	}
	return &VaporError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VaporError) WithDetail(key string, value interface{}) *VaporError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *VaporError) WithDetails(details map[string]interface{}) *VaporError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var vaporErr *VaporError
	if errors.As(err, &vaporErr) {
		return vaporErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VaporError
func GetErrorCode(err error) ErrorCode {
	var vaporErr *VaporError
	if errors.As(err, &vaporErr) {
		return vaporErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a VaporError
func GetErrorDetails(err error) map[string]interface{} {
	var vaporErr *VaporError
	if errors.As(err, &vaporErr) {
		return vaporErr.Details
	}
	return nil
}
