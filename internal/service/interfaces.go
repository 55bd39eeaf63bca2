package service

import (
	"time"

	"ems-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeaveRequestServiceInterface defines the interface for the leave request service
type LeaveRequestServiceInterface interface {
	CreateLeaveRequest(req *CreateLeaveRequestRequest) (*LeaveRequestResponse, error)
	GetLeaveRequest(id uuid.UUID) (*LeaveRequestResponse, error)
	GetLeaveRequestModel(id uuid.UUID) (*models.LeaveRequest, error)
	ListLeaveRequestsFor(actor *models.User, limit, offset int) ([]LeaveRequestResponse, int64, error)
	DeleteLeaveRequest(id uuid.UUID) error
}

// ApprovalServiceInterface defines the interface for the approval state machine
type ApprovalServiceInterface interface {
	Decide(requestID uuid.UUID, actor *models.User, req *DecideRequest) (*ApprovalResponse, error)
	Withdraw(requestID uuid.UUID, actor *models.User, req *WithdrawRequest) (*ApprovalResponse, error)
	ListApprovals(requestID uuid.UUID) ([]ApprovalResponse, error)
}

// AllocationServiceInterface defines the interface for the allocation service
type AllocationServiceInterface interface {
	CreateAllocation(req *CreateAllocationRequest) (*AllocationResponse, error)
	GetAllocation(id uuid.UUID) (*AllocationResponse, error)
	GetAllocationModel(id uuid.UUID) (*models.LeaveAllocation, error)
	UpdateAllocation(id uuid.UUID, req *UpdateAllocationRequest) (*AllocationResponse, error)
	ListAllocations(limit, offset int) ([]AllocationResponse, int64, error)
	ListAllocationsByEmployee(employeeID uuid.UUID) ([]AllocationResponse, error)
	RemainingDays(employeeID, leaveTypeID uuid.UUID, month time.Time) (int, error)
	DeleteAllocation(id uuid.UUID) error
}

// LeaveTypeServiceInterface defines the interface for the leave type service
type LeaveTypeServiceInterface interface {
	CreateLeaveType(req *CreateLeaveTypeRequest) (*LeaveTypeResponse, error)
	GetLeaveType(id uuid.UUID) (*LeaveTypeResponse, error)
	UpdateLeaveType(id uuid.UUID, req *UpdateLeaveTypeRequest) (*LeaveTypeResponse, error)
	ListLeaveTypes() ([]LeaveTypeResponse, error)
	DeleteLeaveType(id uuid.UUID) error
}

// UserServiceInterface defines the interface for the user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUser(id uuid.UUID) (*UserResponse, error)
	GetActor(id uuid.UUID) (*models.User, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	ListUsers(limit, offset int) ([]UserResponse, int64, error)
	DeleteUser(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for the team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetTeam(id uuid.UUID) (*TeamResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	ListTeams(limit, offset int) ([]TeamResponse, int64, error)
	DeleteTeam(id uuid.UUID) error
}
