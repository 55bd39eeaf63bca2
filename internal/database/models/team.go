package models

import (
	"github.com/google/uuid"
)

// Team groups employees under a single lead. LeadID references a user who
// decides team_lead stage approvals for the team's members. No FK constraint
// is declared here: teams and users would otherwise form a migration cycle.
type Team struct {
	BaseModel
	Name        string       `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description string       `json:"description" gorm:"size:500" validate:"max=500"`
	LeadID      *uuid.UUID   `json:"lead_id,omitempty" gorm:"type:uuid;index"`
	Status      EntityStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
