// Package customerr holds the error kinds callers are expected to branch on.
// Anything else coming out of storage is a transport or backend failure and
// is passed through as is.
package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError reports malformed input that the user has to correct.
type ValidationError struct {
	Field string
	Err   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

// NotFoundError reports a referenced user or expense that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// AuthorizationError reports an attempt to touch a record owned by someone else.
type AuthorizationError struct {
	UserID    int64
	ExpenseID int64
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %d is not allowed to access expense %d", e.UserID, e.ExpenseID)
}

// InvalidPeriodError reports an unknown statistics period tag.
type InvalidPeriodError struct {
	Period string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("period %q is not supported", e.Period)
}

func NewValidation(field, msg string) error {
	return &ValidationError{Field: field, Err: msg}
}

func NewNotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: fmt.Sprint(id)}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

func IsInvalidPeriod(err error) bool {
	var target *InvalidPeriodError
	return errors.As(err, &target)
}
