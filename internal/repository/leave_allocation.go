package repository

import (
	"time"

	"ems-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaveAllocationRepository handles database operations for leave allocations
type LeaveAllocationRepository struct {
	db *gorm.DB
}

// NewLeaveAllocationRepository creates a new leave allocation repository
func NewLeaveAllocationRepository(db *gorm.DB) *LeaveAllocationRepository {
	return &LeaveAllocationRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *LeaveAllocationRepository) WithTx(tx *gorm.DB) LeaveAllocationRepositoryInterface {
	return &LeaveAllocationRepository{db: tx}
}

// Create creates a new allocation
func (r *LeaveAllocationRepository) Create(allocation *models.LeaveAllocation) error {
	return r.db.Create(allocation).Error
}

// GetByID retrieves an allocation by ID
func (r *LeaveAllocationRepository) GetByID(id uuid.UUID) (*models.LeaveAllocation, error) {
	var allocation models.LeaveAllocation
	err := r.db.Preload("LeaveType").First(&allocation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// GetActiveByTriple retrieves the single ACTIVE allocation for an
// (employee, leave type, month) triple. The month is normalized to its first day.
func (r *LeaveAllocationRepository) GetActiveByTriple(employeeID, leaveTypeID uuid.UUID, month time.Time) (*models.LeaveAllocation, error) {
	var allocation models.LeaveAllocation
	err := r.db.First(&allocation,
		"employee_id = ? AND leave_type_id = ? AND valid_month = ? AND status = ?",
		employeeID, leaveTypeID, models.MonthStart(month), models.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// GetActiveByTripleForUpdate is GetActiveByTriple with a SELECT ... FOR UPDATE
// row lock. Must run inside a transaction; the lock serializes concurrent
// debits and credits against the same allocation row.
func (r *LeaveAllocationRepository) GetActiveByTripleForUpdate(employeeID, leaveTypeID uuid.UUID, month time.Time) (*models.LeaveAllocation, error) {
	var allocation models.LeaveAllocation
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&allocation,
		"employee_id = ? AND leave_type_id = ? AND valid_month = ? AND status = ?",
		employeeID, leaveTypeID, models.MonthStart(month), models.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// ListByEmployee retrieves all active allocations for an employee
func (r *LeaveAllocationRepository) ListByEmployee(employeeID uuid.UUID) ([]models.LeaveAllocation, error) {
	var allocations []models.LeaveAllocation
	err := r.db.Preload("LeaveType").
		Where("employee_id = ? AND status = ?", employeeID, models.StatusActive).
		Order("valid_month DESC").Find(&allocations).Error
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

// List retrieves all allocations with pagination
func (r *LeaveAllocationRepository) List(limit, offset int) ([]models.LeaveAllocation, int64, error) {
	var allocations []models.LeaveAllocation
	var total int64

	query := r.db.Model(&models.LeaveAllocation{}).Where("status <> ?", models.StatusRemoved)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("LeaveType").Limit(limit).Offset(offset).
		Order("valid_month DESC").Find(&allocations).Error
	if err != nil {
		return nil, 0, err
	}

	return allocations, total, nil
}

// Save persists changes to an allocation
func (r *LeaveAllocationRepository) Save(allocation *models.LeaveAllocation) error {
	return r.db.Save(allocation).Error
}

// SoftDelete marks an allocation as removed without deleting the row
func (r *LeaveAllocationRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.LeaveAllocation{}).Where("id = ?", id).Update("status", models.StatusRemoved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
