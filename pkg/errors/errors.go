// Package errors provides structured error handling for the engine.
// The taxonomy separates "the referenced thing does not exist" from
// "a multi-step operation faulted partway" so callers can branch on
// the failure class rather than on message text.
package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	// Client-side problems
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"

	// Engine faults
	CodeInternal          ErrorCode = "INTERNAL_ERROR"
	CodeProcessingFailure ErrorCode = "PROCESSING_FAILURE"

	// Domain-specific lookups
	CodeRecipeNotFound     ErrorCode = "RECIPE_NOT_FOUND"
	CodeIngredientNotFound ErrorCode = "INGREDIENT_NOT_FOUND"
	CodeProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"

	// Concurrency control
	CodeVersionConflict ErrorCode = "VERSION_CONFLICT"
)

// AppError represents an engine error with structured information
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new engine error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewProcessingError creates a processing failure for a multi-step
// operation. The operation name gives callers enough context to log
// and retry the whole operation; the engine performs no retries.
func NewProcessingError(operation string, cause error) *AppError {
	return NewAppError(
		CodeProcessingFailure,
		"Processing failed",
		fmt.Sprintf("Failed during %s", operation),
	).WithCause(cause).WithMetadata("operation", operation)
}

// NewRecipeNotFoundError creates a recipe not found error
func NewRecipeNotFoundError(recipeID string) *AppError {
	return NewAppError(
		CodeRecipeNotFound,
		"Recipe not found",
		fmt.Sprintf("Recipe with ID %s does not exist", recipeID),
	).WithMetadata("recipe_id", recipeID)
}

// NewIngredientNotFoundError creates an ingredient not found error
func NewIngredientNotFoundError(name string) *AppError {
	return NewAppError(
		CodeIngredientNotFound,
		"Ingredient not found",
		fmt.Sprintf("Ingredient %q is not in the catalog", name),
	).WithMetadata("ingredient", name)
}

// NewProfileNotFoundError creates a preference profile not found error
func NewProfileNotFoundError(userID string) *AppError {
	return NewAppError(
		CodeProfileNotFound,
		"Preference profile not found",
		fmt.Sprintf("No preference profile stored for user %s", userID),
	).WithMetadata("user_id", userID)
}

// NewVersionConflictError creates an optimistic-concurrency conflict error.
// The caller should reload the profile and replay the update.
func NewVersionConflictError(userID string, expected int64) *AppError {
	return NewAppError(
		CodeVersionConflict,
		"Profile version conflict",
		fmt.Sprintf("Profile for user %s was modified concurrently", userID),
	).WithMetadata("user_id", userID).WithMetadata("expected_version", expected)
}

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// IsNotFound reports whether the error is any of the not-found codes
func IsNotFound(err error) bool {
	switch GetCode(err) {
	case CodeNotFound, CodeRecipeNotFound, CodeIngredientNotFound, CodeProfileNotFound:
		return true
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "pkg/errors") {
			builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return builder.String()
}
