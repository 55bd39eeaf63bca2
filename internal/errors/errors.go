package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found or soft-removed
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a policy-violating or malformed input at creation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ForbiddenError represents an authorization predicate failure
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// InvalidStateError represents a workflow transition that is not legal from
// the request's current status
type InvalidStateError struct {
	Current string
	Message string
}

func (e *InvalidStateError) Error() string {
	if e.Current != "" {
		return fmt.Sprintf("invalid state: %s (current status %s)", e.Message, e.Current)
	}
	return fmt.Sprintf("invalid state: %s", e.Message)
}

// InvalidInputError represents an unrecognized enum value in a decision
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// InsufficientBalanceError is returned when a debit would push used days past
// the allocated quota
type InsufficientBalanceError struct {
	Remaining int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance: available %d, requested %d", e.Remaining, e.Requested)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrLeaveTypeNotFound    = &NotFoundError{Entity: "leave type"}
	ErrLeaveRequestNotFound = &NotFoundError{Entity: "leave request"}
	ErrAllocationNotFound   = &NotFoundError{Entity: "leave allocation"}
)

// Already Exists Errors
var (
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrLeaveTypeExists  = &AlreadyExistsError{Entity: "leave type", Context: "with this name"}
	ErrAllocationExists = &AlreadyExistsError{Entity: "leave allocation", Context: "for this employee, leave type and month"}
)

// IsNotFound checks if an error is any NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var se *InvalidStateError
	return errors.As(err, &se)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// IsInsufficientBalance checks if an error is an InsufficientBalanceError
func IsInsufficientBalance(err error) bool {
	var be *InsufficientBalanceError
	return errors.As(err, &be)
}
