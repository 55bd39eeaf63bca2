package testutils

import (
	"fmt"
	"time"

	"ems-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// unique email per instance to avoid index conflicts
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		PasswordHash: string(hash),
		FirstName:    "John",
		LastName:     "Doe",
		Role:         models.RoleEmployee,
		Status:       models.StatusActive,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithTeam sets the team ID for the user
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// WithRoleAndTeam sets both role and team
func (f *UserFactory) WithRoleAndTeam(role models.Role, teamID uuid.UUID) *models.User {
	user := f.Create()
	user.Role = role
	user.TeamID = &teamID
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        fmt.Sprintf("Team %s", id.String()[:8]),
		Description: "A test team",
		Status:      models.StatusActive,
	}
}

// WithLead sets the lead ID for the team
func (f *TeamFactory) WithLead(leadID uuid.UUID) *models.Team {
	team := f.Create()
	team.LeadID = &leadID
	return team
}

// LeaveTypeFactory provides methods to create test LeaveType data
type LeaveTypeFactory struct{}

// NewLeaveTypeFactory creates a new LeaveTypeFactory
func NewLeaveTypeFactory() *LeaveTypeFactory {
	return &LeaveTypeFactory{}
}

// Create creates a test LeaveType with default values
func (f *LeaveTypeFactory) Create() *models.LeaveType {
	id := uuid.New()
	return &models.LeaveType{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   fmt.Sprintf("annual-%s", id.String()[:8]),
		Status: models.StatusActive,
	}
}

// WithName sets a custom name for the leave type
func (f *LeaveTypeFactory) WithName(name string) *models.LeaveType {
	lt := f.Create()
	lt.Name = name
	return lt
}

// AllocationFactory provides methods to create test LeaveAllocation data
type AllocationFactory struct{}

// NewAllocationFactory creates a new AllocationFactory
func NewAllocationFactory() *AllocationFactory {
	return &AllocationFactory{}
}

// Create creates a test allocation for the given employee and leave type in
// the current month, with 10 allocated and 0 used days.
func (f *AllocationFactory) Create(employeeID, leaveTypeID uuid.UUID) *models.LeaveAllocation {
	return &models.LeaveAllocation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		ValidMonth:    models.MonthStart(time.Now().UTC()),
		AllocatedDays: 10,
		UsedDays:      0,
		Status:        models.StatusActive,
	}
}

// WithDays sets allocated and used days
func (f *AllocationFactory) WithDays(employeeID, leaveTypeID uuid.UUID, allocated, used int) *models.LeaveAllocation {
	a := f.Create(employeeID, leaveTypeID)
	a.AllocatedDays = allocated
	a.UsedDays = used
	return a
}

// WithMonth sets the valid month
func (f *AllocationFactory) WithMonth(employeeID, leaveTypeID uuid.UUID, month time.Time) *models.LeaveAllocation {
	a := f.Create(employeeID, leaveTypeID)
	a.ValidMonth = models.MonthStart(month)
	return a
}

// LeaveRequestFactory provides methods to create test LeaveRequest data
type LeaveRequestFactory struct{}

// NewLeaveRequestFactory creates a new LeaveRequestFactory
func NewLeaveRequestFactory() *LeaveRequestFactory {
	return &LeaveRequestFactory{}
}

// Create creates a pending leave request for 3 days starting tomorrow
func (f *LeaveRequestFactory) Create(employeeID, leaveTypeID uuid.UUID) *models.LeaveRequest {
	start := time.Now().UTC().AddDate(0, 0, 1)
	return &models.LeaveRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		StartDate:     time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 2),
		DaysRequested: 3,
		Reason:        "vacation",
		LeaveStatus:   models.LeavePending,
		Status:        models.StatusActive,
	}
}

// WithStatus sets the workflow status
func (f *LeaveRequestFactory) WithStatus(employeeID, leaveTypeID uuid.UUID, status models.LeaveStatus) *models.LeaveRequest {
	r := f.Create(employeeID, leaveTypeID)
	r.LeaveStatus = status
	return r
}

// WithDays sets the requested day count
func (f *LeaveRequestFactory) WithDays(employeeID, leaveTypeID uuid.UUID, days int) *models.LeaveRequest {
	r := f.Create(employeeID, leaveTypeID)
	r.DaysRequested = days
	r.EndDate = r.StartDate.AddDate(0, 0, days-1)
	return r
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Team         *TeamFactory
	LeaveType    *LeaveTypeFactory
	Allocation   *AllocationFactory
	LeaveRequest *LeaveRequestFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Team:         NewTeamFactory(),
		LeaveType:    NewLeaveTypeFactory(),
		Allocation:   NewAllocationFactory(),
		LeaveRequest: NewLeaveRequestFactory(),
	}
}

// CreateTeamWithLead creates a persisted team, its lead and one member.
// Callers need the DB handle separately; this only builds the models.
func (fs *FactorySet) CreateTeamWithLead() (*models.Team, *models.User, *models.User) {
	team := fs.Team.Create()
	lead := fs.User.WithRoleAndTeam(models.RoleTeamLead, team.ID)
	team.LeadID = &lead.ID
	member := fs.User.WithTeam(team.ID)
	return team, lead, member
}
