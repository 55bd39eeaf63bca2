package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaveApproval is one immutable decision event on a leave request. Records
// are only ever appended; together they form the audit trail of a request.
type LeaveApproval struct {
	BaseModel
	LeaveRequestID uuid.UUID     `json:"leave_request_id" gorm:"type:uuid;not null;index" validate:"required"`
	ApprovedByID   uuid.UUID     `json:"approved_by" gorm:"type:uuid;not null" validate:"required"`
	ApprovalType   ApprovalStage `json:"approval_type" gorm:"type:varchar(20);not null" validate:"required"`
	Decision       Decision      `json:"decision" gorm:"type:varchar(20);not null" validate:"required"`
	ApprovalDate   time.Time     `json:"approval_date" gorm:"not null;index"`
	Notes          string        `json:"notes" gorm:"type:text"`
	Status         EntityStatus  `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	LeaveRequest *LeaveRequest `json:"leave_request,omitempty" gorm:"foreignKey:LeaveRequestID"`
	ApprovedBy   *User         `json:"approved_by_user,omitempty" gorm:"foreignKey:ApprovedByID"`
}

// TableName returns the table name for LeaveApproval
func (LeaveApproval) TableName() string {
	return "leave_approvals"
}
