package operations

import (
	"fmt"
)

// ErrorType represents the type of operation error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeExecution    ErrorType = "execution"
	ErrorTypeInvalidState ErrorType = "invalid_state"
	ErrorTypeRegistration ErrorType = "registration"
)

// OperationError reports a pipeline level failure, optionally tied to a step
type OperationError struct {
	Type    ErrorType `json:"type"`
	Step    string    `json:"step,omitempty"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e == nil {
		return "unknown operation error"
	}
	msg := fmt.Sprintf("[%s] %s", e.Type, e.Message)
	if e.Step != "" {
		msg = fmt.Sprintf("[%s] %s: %s", e.Type, e.Step, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewValidationError is returned when a step's preconditions are not met
func NewValidationError(step, message string) *OperationError {
	return &OperationError{Type: ErrorTypeValidation, Step: step, Message: message}
}

// NewInvalidStateError is returned for a phase transition out of order
func NewInvalidStateError(message string) *OperationError {
	return &OperationError{Type: ErrorTypeInvalidState, Message: message}
}

// NewRegistrationError is returned when a step cannot be registered
func NewRegistrationError(step, message string) *OperationError {
	return &OperationError{Type: ErrorTypeRegistration, Step: step, Message: message}
}

// WrapError attaches a step ID to a step execution failure
func WrapError(err error, step, message string) *OperationError {
	if err == nil {
		return nil
	}
	return &OperationError{Type: ErrorTypeExecution, Step: step, Message: message, Cause: err}
}
