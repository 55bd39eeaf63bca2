package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaveRequest is one employee's request for leave days. LeaveStatus is the
// workflow state; Status is soft deletion and never drives the workflow.
// The approval flags stay nil until the corresponding stage has decided.
type LeaveRequest struct {
	BaseModel
	EmployeeID    uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	LeaveTypeID   uuid.UUID `json:"leave_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate     time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate       time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`
	DaysRequested int       `json:"days_requested" gorm:"not null" validate:"required,gt=0"`
	Reason        string    `json:"reason" gorm:"type:text"`

	TeamLeadApproval     *bool      `json:"team_lead_approval,omitempty"`
	HRApproval           *bool      `json:"hr_approval,omitempty"`
	ApprovedByTeamLeadID *uuid.UUID `json:"approved_by_team_lead,omitempty" gorm:"type:uuid"`
	ApprovedByHRID       *uuid.UUID `json:"approved_by_hr,omitempty" gorm:"type:uuid"`

	LeaveStatus LeaveStatus  `json:"leave_status" gorm:"type:varchar(30);not null;default:'pending';index"`
	Status      EntityStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	Employee  *User      `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	LeaveType *LeaveType `json:"leave_type,omitempty" gorm:"foreignKey:LeaveTypeID"`
}

// TableName returns the table name for LeaveRequest
func (LeaveRequest) TableName() string {
	return "leave_requests"
}
