package repository

import (
	"ems-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveApprovalRepository handles database operations for approval records.
// The audit trail is append-only, so the repository exposes no update or
// delete operations.
type LeaveApprovalRepository struct {
	db *gorm.DB
}

// NewLeaveApprovalRepository creates a new leave approval repository
func NewLeaveApprovalRepository(db *gorm.DB) *LeaveApprovalRepository {
	return &LeaveApprovalRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *LeaveApprovalRepository) WithTx(tx *gorm.DB) LeaveApprovalRepositoryInterface {
	return &LeaveApprovalRepository{db: tx}
}

// Create appends a new approval record
func (r *LeaveApprovalRepository) Create(approval *models.LeaveApproval) error {
	return r.db.Create(approval).Error
}

// ListByRequest retrieves the approval history of a request, newest first
func (r *LeaveApprovalRepository) ListByRequest(requestID uuid.UUID) ([]models.LeaveApproval, error) {
	var approvals []models.LeaveApproval
	err := r.db.Preload("ApprovedBy").
		Where("leave_request_id = ?", requestID).
		Order("approval_date DESC").Find(&approvals).Error
	if err != nil {
		return nil, err
	}
	return approvals, nil
}
