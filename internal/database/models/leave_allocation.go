package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaveAllocation is the monthly quota of leave days for one employee and one
// leave type. ValidMonth is always the first day of the month. UsedDays is
// mutated only by the allocation ledger; 0 <= UsedDays <= AllocatedDays holds
// after every ledger operation.
type LeaveAllocation struct {
	BaseModel
	EmployeeID    uuid.UUID    `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_allocations_active_triple,where:status = 'active'" validate:"required"`
	LeaveTypeID   uuid.UUID    `json:"leave_type_id" gorm:"type:uuid;not null;uniqueIndex:idx_allocations_active_triple,where:status = 'active'" validate:"required"`
	ValidMonth    time.Time    `json:"valid_month" gorm:"type:date;not null;uniqueIndex:idx_allocations_active_triple,where:status = 'active'" validate:"required"`
	AllocatedDays int          `json:"allocated_days" gorm:"not null;default:0" validate:"gte=0"`
	UsedDays      int          `json:"used_days" gorm:"not null;default:0" validate:"gte=0"`
	Status        EntityStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	Employee  *User      `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	LeaveType *LeaveType `json:"leave_type,omitempty" gorm:"foreignKey:LeaveTypeID"`
}

// TableName returns the table name for LeaveAllocation
func (LeaveAllocation) TableName() string {
	return "leave_allocations"
}

// RemainingDays is the balance still available for new requests
func (a *LeaveAllocation) RemainingDays() int {
	return a.AllocatedDays - a.UsedDays
}

// MonthStart normalizes a date to the first day of its month, the canonical
// ValidMonth value.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
