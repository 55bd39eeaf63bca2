package repository

import (
	"time"

	"ems-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the contract for user data access
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetActiveByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
	ListByTeamID(teamID uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
	SoftDelete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the contract for team data access
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetActiveByID(id uuid.UUID) (*models.Team, error)
	List(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	SoftDelete(id uuid.UUID) error
}

// LeaveTypeRepositoryInterface defines the contract for leave type data access
type LeaveTypeRepositoryInterface interface {
	Create(leaveType *models.LeaveType) error
	GetByID(id uuid.UUID) (*models.LeaveType, error)
	GetActiveByID(id uuid.UUID) (*models.LeaveType, error)
	GetByName(name string) (*models.LeaveType, error)
	List() ([]models.LeaveType, error)
	Update(leaveType *models.LeaveType) error
	SoftDelete(id uuid.UUID) error
}

// LeaveAllocationRepositoryInterface defines the contract for allocation data
// access. GetActiveByTripleForUpdate must be called inside a transaction; it
// takes a row-level lock that serializes concurrent ledger mutations of the
// same (employee, leave type, month) row.
type LeaveAllocationRepositoryInterface interface {
	WithTx(tx *gorm.DB) LeaveAllocationRepositoryInterface
	Create(allocation *models.LeaveAllocation) error
	GetByID(id uuid.UUID) (*models.LeaveAllocation, error)
	GetActiveByTriple(employeeID, leaveTypeID uuid.UUID, month time.Time) (*models.LeaveAllocation, error)
	GetActiveByTripleForUpdate(employeeID, leaveTypeID uuid.UUID, month time.Time) (*models.LeaveAllocation, error)
	ListByEmployee(employeeID uuid.UUID) ([]models.LeaveAllocation, error)
	List(limit, offset int) ([]models.LeaveAllocation, int64, error)
	Save(allocation *models.LeaveAllocation) error
	SoftDelete(id uuid.UUID) error
}

// LeaveRequestRepositoryInterface defines the contract for leave request data
// access. GetActiveByIDForUpdate locks the request row so racing decisions on
// the same request observe each other's status writes.
type LeaveRequestRepositoryInterface interface {
	WithTx(tx *gorm.DB) LeaveRequestRepositoryInterface
	Create(request *models.LeaveRequest) error
	GetActiveByID(id uuid.UUID) (*models.LeaveRequest, error)
	GetActiveByIDForUpdate(id uuid.UUID) (*models.LeaveRequest, error)
	ListByEmployee(employeeID uuid.UUID, limit, offset int) ([]models.LeaveRequest, int64, error)
	ListByTeam(teamID uuid.UUID, limit, offset int) ([]models.LeaveRequest, int64, error)
	List(limit, offset int) ([]models.LeaveRequest, int64, error)
	Save(request *models.LeaveRequest) error
	SoftDelete(id uuid.UUID) error
}

// LeaveApprovalRepositoryInterface defines the contract for approval records.
// Records are append-only: there is deliberately no update or delete method.
type LeaveApprovalRepositoryInterface interface {
	WithTx(tx *gorm.DB) LeaveApprovalRepositoryInterface
	Create(approval *models.LeaveApproval) error
	ListByRequest(requestID uuid.UUID) ([]models.LeaveApproval, error)
}
