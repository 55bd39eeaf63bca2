package models

import (
	"github.com/google/uuid"
)

// User represents an employee account. Role is a closed enum; TeamID is nil
// for employees not yet assigned to a team.
type User struct {
	BaseModel
	Email        string       `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string       `json:"-" gorm:"not null;size:100"`
	FirstName    string       `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string       `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Role         Role         `json:"role" gorm:"type:varchar(20);not null;default:'employee'"`
	TeamID       *uuid.UUID   `json:"team_id,omitempty" gorm:"type:uuid;index"`
	Status       EntityStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
