package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeExternal indicates an error from an external service
	ErrorTypeExternal ErrorType = "EXTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}

// FieldViolation describes a single violated field constraint.
type FieldViolation struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// ValidationError reports every violated constraint of an input record,
// not only the first one encountered.
type ValidationError struct {
	Subject    string
	Violations []FieldViolation
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return fmt.Sprintf("%s: %s validation failed: %s",
		ErrorTypeValidation, e.Subject, strings.Join(parts, "; "))
}

// NewValidationError creates a validation error for the given subject.
func NewValidationError(subject string, violations []FieldViolation) *ValidationError {
	return &ValidationError{Subject: subject, Violations: violations}
}

// ViolationCollector accumulates field violations during validation.
type ViolationCollector struct {
	violations []FieldViolation
}

// Add records a violation.
func (c *ViolationCollector) Add(field, value, message string) {
	c.violations = append(c.violations, FieldViolation{Field: field, Value: value, Message: message})
}

// Addf records a violation with a formatted message.
func (c *ViolationCollector) Addf(field, value, format string, args ...any) {
	c.Add(field, value, fmt.Sprintf(format, args...))
}

// Err returns a ValidationError if any violation was recorded, nil otherwise.
func (c *ViolationCollector) Err(subject string) error {
	if len(c.violations) == 0 {
		return nil
	}
	return NewValidationError(subject, c.violations)
}
