package repository

import (
	"ems-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaveRequestRepository handles database operations for leave requests
type LeaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *gorm.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *LeaveRequestRepository) WithTx(tx *gorm.DB) LeaveRequestRepositoryInterface {
	return &LeaveRequestRepository{db: tx}
}

// Create creates a new leave request
func (r *LeaveRequestRepository) Create(request *models.LeaveRequest) error {
	return r.db.Create(request).Error
}

// GetActiveByID retrieves a leave request by ID, excluding soft-removed
// records. The employee is preloaded for authorization checks.
func (r *LeaveRequestRepository) GetActiveByID(id uuid.UUID) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.db.Preload("Employee").Preload("LeaveType").
		First(&request, "id = ? AND status = ?", id, models.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetActiveByIDForUpdate locks the request row with SELECT ... FOR UPDATE.
// Must run inside a transaction; a racing decision on the same request blocks
// here until the first transaction commits, then observes its status.
func (r *LeaveRequestRepository) GetActiveByIDForUpdate(id uuid.UUID) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, "id = ? AND status = ?", id, models.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByEmployee retrieves an employee's leave requests with pagination
func (r *LeaveRequestRepository) ListByEmployee(employeeID uuid.UUID, limit, offset int) ([]models.LeaveRequest, int64, error) {
	query := r.db.Model(&models.LeaveRequest{}).
		Where("employee_id = ? AND status = ?", employeeID, models.StatusActive)
	return r.page(query, limit, offset)
}

// ListByTeam retrieves leave requests from every member of a team
func (r *LeaveRequestRepository) ListByTeam(teamID uuid.UUID, limit, offset int) ([]models.LeaveRequest, int64, error) {
	query := r.db.Model(&models.LeaveRequest{}).
		Joins("JOIN users ON users.id = leave_requests.employee_id").
		Where("users.team_id = ? AND leave_requests.status = ?", teamID, models.StatusActive)
	return r.page(query, limit, offset)
}

// List retrieves all active leave requests with pagination
func (r *LeaveRequestRepository) List(limit, offset int) ([]models.LeaveRequest, int64, error) {
	query := r.db.Model(&models.LeaveRequest{}).Where("status = ?", models.StatusActive)
	return r.page(query, limit, offset)
}

func (r *LeaveRequestRepository) page(query *gorm.DB, limit, offset int) ([]models.LeaveRequest, int64, error) {
	var requests []models.LeaveRequest
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Employee").Preload("LeaveType").
		Limit(limit).Offset(offset).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// Save persists changes to a leave request
func (r *LeaveRequestRepository) Save(request *models.LeaveRequest) error {
	return r.db.Save(request).Error
}

// SoftDelete marks a leave request as removed without deleting the row
func (r *LeaveRequestRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.LeaveRequest{}).Where("id = ?", id).Update("status", models.StatusRemoved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
