package models

// LeaveType is a category of leave (annual, sick, ...) that allocations and
// requests reference.
type LeaveType struct {
	BaseModel
	Name   string       `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	Status EntityStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for LeaveType
func (LeaveType) TableName() string {
	return "leave_types"
}
