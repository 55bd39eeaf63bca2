package repository

import (
	"ems-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveTypeRepository handles database operations for leave types
type LeaveTypeRepository struct {
	db *gorm.DB
}

// NewLeaveTypeRepository creates a new leave type repository
func NewLeaveTypeRepository(db *gorm.DB) *LeaveTypeRepository {
	return &LeaveTypeRepository{db: db}
}

// Create creates a new leave type
func (r *LeaveTypeRepository) Create(leaveType *models.LeaveType) error {
	return r.db.Create(leaveType).Error
}

// GetByID retrieves a leave type by ID
func (r *LeaveTypeRepository) GetByID(id uuid.UUID) (*models.LeaveType, error) {
	var leaveType models.LeaveType
	err := r.db.First(&leaveType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &leaveType, nil
}

// GetActiveByID retrieves a leave type by ID, excluding inactive and removed records
func (r *LeaveTypeRepository) GetActiveByID(id uuid.UUID) (*models.LeaveType, error) {
	var leaveType models.LeaveType
	err := r.db.First(&leaveType, "id = ? AND status = ?", id, models.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return &leaveType, nil
}

// GetByName retrieves a leave type by its unique name
func (r *LeaveTypeRepository) GetByName(name string) (*models.LeaveType, error) {
	var leaveType models.LeaveType
	err := r.db.First(&leaveType, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &leaveType, nil
}

// List retrieves all leave types that are not removed
func (r *LeaveTypeRepository) List() ([]models.LeaveType, error) {
	var leaveTypes []models.LeaveType
	err := r.db.Where("status <> ?", models.StatusRemoved).Order("name ASC").Find(&leaveTypes).Error
	if err != nil {
		return nil, err
	}
	return leaveTypes, nil
}

// Update updates a leave type
func (r *LeaveTypeRepository) Update(leaveType *models.LeaveType) error {
	return r.db.Save(leaveType).Error
}

// SoftDelete marks a leave type as removed without deleting the row
func (r *LeaveTypeRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.LeaveType{}).Where("id = ?", id).Update("status", models.StatusRemoved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
