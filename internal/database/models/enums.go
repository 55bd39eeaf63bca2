package models

// EntityStatus governs soft deletion of records, separate from any workflow state
type EntityStatus string

const (
	StatusActive   EntityStatus = "active"
	StatusInactive EntityStatus = "inactive"
	StatusRemoved  EntityStatus = "removed"
)

// IsValid checks if the EntityStatus is valid
func (s EntityStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusRemoved:
		return true
	}
	return false
}

// Role is the closed set of user roles. Authorization decisions dispatch on
// this enum only, never on free-form role names.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleTeamLead Role = "team_lead"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleTeamLead, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// LeaveStatus is the workflow state of a leave request
type LeaveStatus string

const (
	LeavePending          LeaveStatus = "pending"
	LeaveTeamLeadApproved LeaveStatus = "team_lead_approved"
	LeaveHRApproved       LeaveStatus = "hr_approved"
	LeaveRejected         LeaveStatus = "rejected"
	LeaveWithdrawn        LeaveStatus = "withdrawn"
)

// IsValid checks if the LeaveStatus is valid
func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeavePending, LeaveTeamLeadApproved, LeaveHRApproved, LeaveRejected, LeaveWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether no further decision is legal from this state.
// HR_APPROVED is terminal for approvals but still admits a withdrawal.
func (s LeaveStatus) IsTerminal() bool {
	switch s {
	case LeaveHRApproved, LeaveRejected, LeaveWithdrawn:
		return true
	}
	return false
}

// ApprovalStage identifies which approval tier a decision is made at
type ApprovalStage string

const (
	StageTeamLead ApprovalStage = "team_lead"
	StageHR       ApprovalStage = "hr"
)

// IsValid checks if the ApprovalStage is valid
func (s ApprovalStage) IsValid() bool {
	switch s {
	case StageTeamLead, StageHR:
		return true
	}
	return false
}

// Decision is the outcome recorded on an approval record
type Decision string

const (
	DecisionApprove  Decision = "approve"
	DecisionReject   Decision = "reject"
	DecisionWithdraw Decision = "withdraw"
)

// IsValid checks if the Decision is valid
func (d Decision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionWithdraw:
		return true
	}
	return false
}
