package service

import (
	"errors"
	"fmt"
	"time"

	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"
	"ems-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger owns the used-day counters on leave allocations. It is the only code
// path that mutates UsedDays; the approval state machine drives it from inside
// its own transactions so a status change and its balance effect commit
// together.
type Ledger struct {
	db          *gorm.DB
	allocations repository.LeaveAllocationRepositoryInterface

	// autoCreate lets Debit create a missing allocation with defaultDays
	// instead of failing. A guarded fallback, not the provisioning path.
	autoCreate  bool
	defaultDays int
}

// NewLedger creates a new allocation ledger
func NewLedger(db *gorm.DB, allocations repository.LeaveAllocationRepositoryInterface, autoCreate bool, defaultDays int) *Ledger {
	return &Ledger{
		db:          db,
		allocations: allocations,
		autoCreate:  autoCreate,
		defaultDays: defaultDays,
	}
}

// DebitTx increments UsedDays on the ACTIVE allocation for the triple inside
// the given transaction, holding a row lock so concurrent mutations of the
// same row serialize. Returns InsufficientBalanceError when the debit would
// exceed AllocatedDays and ErrAllocationNotFound when the allocation is
// missing and auto-creation is disabled.
func (l *Ledger) DebitTx(tx *gorm.DB, employeeID, leaveTypeID uuid.UUID, month time.Time, days int) (*models.LeaveAllocation, error) {
	if days <= 0 {
		return nil, &apperrors.ValidationError{Field: "days", Message: "must be positive"}
	}

	repo := l.allocations.WithTx(tx)
	allocation, err := repo.GetActiveByTripleForUpdate(employeeID, leaveTypeID, month)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load allocation: %w", err)
		}
		if !l.autoCreate {
			return nil, apperrors.ErrAllocationNotFound
		}
		allocation = &models.LeaveAllocation{
			EmployeeID:    employeeID,
			LeaveTypeID:   leaveTypeID,
			ValidMonth:    models.MonthStart(month),
			AllocatedDays: l.defaultDays,
			UsedDays:      0,
			Status:        models.StatusActive,
		}
		if err := repo.Create(allocation); err != nil {
			return nil, fmt.Errorf("failed to create fallback allocation: %w", err)
		}
	}

	if allocation.UsedDays+days > allocation.AllocatedDays {
		return nil, &apperrors.InsufficientBalanceError{
			Remaining: allocation.RemainingDays(),
			Requested: days,
		}
	}

	allocation.UsedDays += days
	assertBalanceInvariant(allocation)

	if err := repo.Save(allocation); err != nil {
		return nil, fmt.Errorf("failed to save allocation: %w", err)
	}
	return allocation, nil
}

// CreditTx decrements UsedDays on the ACTIVE allocation for the triple inside
// the given transaction, restoring the balance of a withdrawn request.
// UsedDays clamps at zero rather than going negative.
func (l *Ledger) CreditTx(tx *gorm.DB, employeeID, leaveTypeID uuid.UUID, month time.Time, days int) (*models.LeaveAllocation, error) {
	if days <= 0 {
		return nil, &apperrors.ValidationError{Field: "days", Message: "must be positive"}
	}

	repo := l.allocations.WithTx(tx)
	allocation, err := repo.GetActiveByTripleForUpdate(employeeID, leaveTypeID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to load allocation: %w", err)
	}

	allocation.UsedDays -= days
	if allocation.UsedDays < 0 {
		allocation.UsedDays = 0
	}
	assertBalanceInvariant(allocation)

	if err := repo.Save(allocation); err != nil {
		return nil, fmt.Errorf("failed to save allocation: %w", err)
	}
	return allocation, nil
}

// Debit runs DebitTx in its own transaction
func (l *Ledger) Debit(employeeID, leaveTypeID uuid.UUID, month time.Time, days int) (*models.LeaveAllocation, error) {
	var allocation *models.LeaveAllocation
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		allocation, txErr = l.DebitTx(tx, employeeID, leaveTypeID, month, days)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return allocation, nil
}

// Credit runs CreditTx in its own transaction
func (l *Ledger) Credit(employeeID, leaveTypeID uuid.UUID, month time.Time, days int) (*models.LeaveAllocation, error) {
	var allocation *models.LeaveAllocation
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		allocation, txErr = l.CreditTx(tx, employeeID, leaveTypeID, month, days)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return allocation, nil
}

// RemainingDays returns the balance still available on the ACTIVE allocation
// for the triple
func (l *Ledger) RemainingDays(employeeID, leaveTypeID uuid.UUID, month time.Time) (int, error) {
	allocation, err := l.allocations.GetActiveByTriple(employeeID, leaveTypeID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrAllocationNotFound
		}
		return 0, fmt.Errorf("failed to load allocation: %w", err)
	}
	return allocation.RemainingDays(), nil
}

// assertBalanceInvariant panics when 0 <= used <= allocated does not hold
// after a ledger mutation. Callers pre-check sufficiency, so a violation here
// is a logic defect, not a user error; the surrounding transaction rolls back.
func assertBalanceInvariant(a *models.LeaveAllocation) {
	if a.UsedDays < 0 || a.UsedDays > a.AllocatedDays {
		panic(fmt.Sprintf("allocation %s balance invariant violated: used=%d allocated=%d",
			a.ID, a.UsedDays, a.AllocatedDays))
	}
}
