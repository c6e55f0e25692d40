// ABOUTME: Custom error types for the fusion core
// ABOUTME: Provides structured errors for graceful degradation and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// MalformedInputError marks a document or image that is missing expected
// fields. It is recovered locally by skipping the item or substituting
// defaults, never propagated out of a fusion run.
type MalformedInputError struct {
	Item   string
	Reason string
}

// Error implements the error interface
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %s: %s", e.Item, e.Reason)
}

// ExternalAPIError represents an error from an external collaborator
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsMalformedInput checks if an error is a MalformedInputError
func IsMalformedInput(err error) bool {
	var malformedErr *MalformedInputError
	return errors.As(err, &malformedErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
