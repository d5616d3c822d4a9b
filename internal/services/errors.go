package services

import (
	"errors"
	"fmt"
)

// Error variables. Every one of these is a normal, user-visible
// outcome of a single request; none is retried and none is fatal.
var (
	ErrUserAlreadyExists  = errors.New("email or username already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrRecipeNotFound     = errors.New("recipe does not exist")
	ErrIngredientNotFound = errors.New("ingredient does not exist")
	ErrTagNotFound        = errors.New("tag does not exist")

	ErrPermissionDenied = errors.New("not allowed to modify this resource")

	ErrAlreadyAdded      = errors.New("recipe already added")
	ErrAlreadySubscribed = errors.New("already subscribed to this author")
	ErrSelfSubscription  = errors.New("cannot subscribe to self")
)

// ValidationError reports a malformed or out-of-range input with
// field-level detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError constructs a ValidationError for one field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
