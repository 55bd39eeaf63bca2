// Package authz holds the authorization predicates for the leave workflow.
// Every check is a pure function over the actor and the target entity; callers
// never compare role names inline.
package authz

import (
	"ems-backend/internal/database/models"
)

// CanDecide reports whether actor may record a decision at the given stage on
// the given request. The request must carry its Employee so team membership
// can be compared.
//
// Team leads decide at the team_lead stage only for members of their own team
// and never for themselves. HR decides at the hr stage unconditionally.
// Admins bypass all checks.
func CanDecide(actor *models.User, stage models.ApprovalStage, request *models.LeaveRequest) bool {
	if actor == nil || request == nil {
		return false
	}
	if actor.Role == models.RoleAdmin {
		return true
	}

	switch stage {
	case models.StageTeamLead:
		if actor.Role != models.RoleTeamLead {
			return false
		}
		if request.EmployeeID == actor.ID {
			// no self-approval
			return false
		}
		return sameTeam(actor, request.Employee)
	case models.StageHR:
		return actor.Role == models.RoleHR
	}
	return false
}

// CanWithdraw reports whether actor may withdraw an approved request.
// Withdrawal is an HR-stage action.
func CanWithdraw(actor *models.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleHR || actor.Role == models.RoleAdmin
}

// CanViewRequest reports whether actor may read the given request. Employees
// see their own requests, team leads their team's, HR and admins everything.
// The request-listing layer uses the same rule for scoping.
func CanViewRequest(actor *models.User, request *models.LeaveRequest) bool {
	if actor == nil || request == nil {
		return false
	}
	switch actor.Role {
	case models.RoleAdmin, models.RoleHR:
		return true
	case models.RoleTeamLead:
		if request.EmployeeID == actor.ID {
			return true
		}
		return sameTeam(actor, request.Employee)
	case models.RoleEmployee:
		return request.EmployeeID == actor.ID
	}
	return false
}

// CanViewAllocation reports whether actor may read the given allocation.
func CanViewAllocation(actor *models.User, allocation *models.LeaveAllocation) bool {
	if actor == nil || allocation == nil {
		return false
	}
	switch actor.Role {
	case models.RoleAdmin, models.RoleHR:
		return true
	default:
		return allocation.EmployeeID == actor.ID
	}
}

// CanManageAllocations reports whether actor may create or change allocations
// and leave types.
func CanManageAllocations(actor *models.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleHR || actor.Role == models.RoleAdmin
}

// CanManageRequests reports whether actor may act on leave requests beyond
// their own: filing on another employee's behalf and soft-deleting requests.
func CanManageRequests(actor *models.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleHR || actor.Role == models.RoleAdmin
}

// CanManageDirectory reports whether actor may create or change users and teams.
func CanManageDirectory(actor *models.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleHR || actor.Role == models.RoleAdmin
}

func sameTeam(actor *models.User, employee *models.User) bool {
	if employee == nil || actor.TeamID == nil || employee.TeamID == nil {
		return false
	}
	return *actor.TeamID == *employee.TeamID
}
