package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigUnreadable ErrorCode = "CONFIG_UNREADABLE"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"

	// Command execution errors
	ErrCodeCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCodeCommandFailed   ErrorCode = "COMMAND_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// RCError represents a structured error with context
type RCError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *RCError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RCError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *RCError) WithDetail(key string, value interface{}) *RCError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *RCError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new RCError
func New(code ErrorCode, message string) *RCError {
	return &RCError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an RCError
func Wrap(err error, code ErrorCode, message string) *RCError {
	return &RCError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As returns the first RCError in err's chain.
func As(err error) (*RCError, bool) {
	for err != nil {
		if rcErr, ok := err.(*RCError); ok {
			return rcErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// Is checks if an error is a specific RCError code
func Is(err error, code ErrorCode) bool {
	rcErr, ok := As(err)
	if !ok {
		return false
	}
	return rcErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	rcErr, ok := As(err)
	if !ok {
		return ""
	}
	return rcErr.Code
}
