package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "leave request"}
		assert.Equal(t, "leave request not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "user"}
		err2 := &NotFoundError{Entity: "user"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrUserNotFound, ErrTeamNotFound))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrLeaveRequestNotFound, ErrLeaveRequestNotFound))
		assert.False(t, errors.Is(ErrLeaveRequestNotFound, ErrAllocationNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAllocationNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
	})

	t.Run("IsNotFound sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading request: %w", ErrLeaveRequestNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrLeaveRequestNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_date", Message: "cannot request leave for past dates"}
		assert.Equal(t, "validation error: start_date - cannot request leave for past dates", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "insufficient leave balance, available: 3"}
		assert.Equal(t, "validation error: insufficient leave balance, available: 3", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(&ValidationError{Message: "bad"}))
		assert.False(t, IsValidation(ErrUserNotFound))
	})
}

func TestForbiddenError(t *testing.T) {
	err := &ForbiddenError{Message: "only HR can withdraw leaves"}
	assert.Equal(t, "only HR can withdraw leaves", err.Error())
	assert.True(t, IsForbidden(err))
	assert.False(t, IsForbidden(&ValidationError{Message: "bad"}))
}

func TestInvalidStateError(t *testing.T) {
	t.Run("Error message with current status", func(t *testing.T) {
		err := &InvalidStateError{Current: "REJECTED", Message: "cannot approve at hr stage"}
		assert.Equal(t, "invalid state: cannot approve at hr stage (current status REJECTED)", err.Error())
	})

	t.Run("Error message without current status", func(t *testing.T) {
		err := &InvalidStateError{Message: "cannot approve at hr stage"}
		assert.Equal(t, "invalid state: cannot approve at hr stage", err.Error())
	})

	t.Run("IsInvalidState helper", func(t *testing.T) {
		assert.True(t, IsInvalidState(&InvalidStateError{Message: "no"}))
		assert.False(t, IsInvalidState(&ForbiddenError{Message: "no"}))
	})
}

func TestInvalidInputError(t *testing.T) {
	err := &InvalidInputError{Field: "approval_type", Value: "ceo"}
	assert.Equal(t, `invalid approval_type: "ceo"`, err.Error())
	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsInvalidInput(&InvalidStateError{}))
}

func TestInsufficientBalanceError(t *testing.T) {
	err := &InsufficientBalanceError{Remaining: 3, Requested: 5}
	assert.Equal(t, "insufficient leave balance: available 3, requested 5", err.Error())
	assert.True(t, IsInsufficientBalance(err))

	t.Run("sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("debit: %w", err)
		assert.True(t, IsInsufficientBalance(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "leave allocation", Context: "for this employee, leave type and month"}
		assert.Equal(t, "leave allocation already exists for this employee, leave type and month", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrAllocationExists, ErrAllocationExists))
		assert.False(t, errors.Is(ErrAllocationExists, ErrUserExists))
	})
}
