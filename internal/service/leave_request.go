package service

import (
	"errors"
	"fmt"
	"time"

	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"
	"ems-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the wire format for all dates
const DateLayout = "2006-01-02"

// LeaveRequestService handles business logic for leave requests
type LeaveRequestService struct {
	requests   repository.LeaveRequestRepositoryInterface
	users      repository.UserRepositoryInterface
	leaveTypes repository.LeaveTypeRepositoryInterface
	ledger     *Ledger
	validator  *validator.Validate
}

// NewLeaveRequestService creates a new leave request service
func NewLeaveRequestService(
	requests repository.LeaveRequestRepositoryInterface,
	users repository.UserRepositoryInterface,
	leaveTypes repository.LeaveTypeRepositoryInterface,
	ledger *Ledger,
	validator *validator.Validate,
) *LeaveRequestService {
	return &LeaveRequestService{
		requests:   requests,
		users:      users,
		leaveTypes: leaveTypes,
		ledger:     ledger,
		validator:  validator,
	}
}

// CreateLeaveRequestRequest represents the data needed to create a leave request.
// DaysRequested is caller-supplied and trusted past creation validation; it is
// never re-derived from the date range.
type CreateLeaveRequestRequest struct {
	EmployeeID    uuid.UUID `json:"employee_id" validate:"required"`
	LeaveTypeID   uuid.UUID `json:"leave_type_id" validate:"required"`
	StartDate     string    `json:"start_date" validate:"required"`
	EndDate       string    `json:"end_date" validate:"required"`
	DaysRequested int       `json:"days_requested" validate:"required,gt=0"`
	Reason        string    `json:"reason"`
}

// LeaveRequestResponse represents the response data for a leave request
type LeaveRequestResponse struct {
	ID                 uuid.UUID          `json:"id"`
	EmployeeID         uuid.UUID          `json:"employee_id"`
	EmployeeEmail      string             `json:"employee_email,omitempty"`
	LeaveTypeID        uuid.UUID          `json:"leave_type_id"`
	LeaveTypeName      string             `json:"leave_type_name,omitempty"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	DaysRequested      int                `json:"days_requested"`
	Reason             string             `json:"reason"`
	TeamLeadApproval   *bool              `json:"team_lead_approval,omitempty"`
	HRApproval         *bool              `json:"hr_approval,omitempty"`
	ApprovedByTeamLead *uuid.UUID         `json:"approved_by_team_lead,omitempty"`
	ApprovedByHR       *uuid.UUID         `json:"approved_by_hr,omitempty"`
	LeaveStatus        models.LeaveStatus `json:"leave_status"`
	CreatedAt          string             `json:"created_at"`
}

// CreateLeaveRequest validates and creates a new PENDING leave request.
// Validation runs once, here: the employee must be active and on a team, the
// dates ordered and not in the past, and the ACTIVE allocation for the month
// of the start date must cover DaysRequested. Any violation returns a
// ValidationError and persists nothing.
func (s *LeaveRequestService) CreateLeaveRequest(req *CreateLeaveRequestRequest) (*LeaveRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if startDate.Before(today) {
		return nil, &apperrors.ValidationError{Field: "start_date", Message: "cannot request leave for past dates"}
	}

	employee, err := s.users.GetActiveByID(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ValidationError{Field: "employee_id", Message: "employee not found"}
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	if employee.TeamID == nil {
		return nil, &apperrors.ValidationError{Field: "employee_id", Message: "employee must belong to a team"}
	}

	leaveType, err := s.leaveTypes.GetActiveByID(req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ValidationError{Field: "leave_type_id", Message: "leave type not found"}
		}
		return nil, fmt.Errorf("failed to load leave type: %w", err)
	}

	remaining, err := s.ledger.RemainingDays(employee.ID, leaveType.ID, startDate)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, &apperrors.ValidationError{Message: "no active leave allocation found for this month"}
		}
		return nil, err
	}
	if remaining < req.DaysRequested {
		return nil, &apperrors.ValidationError{
			Message: fmt.Sprintf("insufficient leave balance, available: %d", remaining),
		}
	}

	request := &models.LeaveRequest{
		EmployeeID:    employee.ID,
		LeaveTypeID:   leaveType.ID,
		StartDate:     startDate,
		EndDate:       endDate,
		DaysRequested: req.DaysRequested,
		Reason:        req.Reason,
		LeaveStatus:   models.LeavePending,
		Status:        models.StatusActive,
	}
	if err := s.requests.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	request.Employee = employee
	request.LeaveType = leaveType
	return convertLeaveRequestToResponse(request), nil
}

// GetLeaveRequest retrieves a single leave request
func (s *LeaveRequestService) GetLeaveRequest(id uuid.UUID) (*LeaveRequestResponse, error) {
	request, err := s.requests.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to load leave request: %w", err)
	}
	return convertLeaveRequestToResponse(request), nil
}

// GetLeaveRequestModel retrieves the underlying model, for authorization checks
func (s *LeaveRequestService) GetLeaveRequestModel(id uuid.UUID) (*models.LeaveRequest, error) {
	request, err := s.requests.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to load leave request: %w", err)
	}
	return request, nil
}

// ListLeaveRequestsFor lists leave requests scoped by the actor's role:
// employees see their own, team leads their team's, HR and admins everything.
func (s *LeaveRequestService) ListLeaveRequestsFor(actor *models.User, limit, offset int) ([]LeaveRequestResponse, int64, error) {
	var (
		requests []models.LeaveRequest
		total    int64
		err      error
	)

	switch actor.Role {
	case models.RoleAdmin, models.RoleHR:
		requests, total, err = s.requests.List(limit, offset)
	case models.RoleTeamLead:
		if actor.TeamID == nil {
			requests, total, err = s.requests.ListByEmployee(actor.ID, limit, offset)
		} else {
			requests, total, err = s.requests.ListByTeam(*actor.TeamID, limit, offset)
		}
	default:
		requests, total, err = s.requests.ListByEmployee(actor.ID, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *convertLeaveRequestToResponse(&requests[i]))
	}
	return responses, total, nil
}

// DeleteLeaveRequest soft-removes a leave request
func (s *LeaveRequestService) DeleteLeaveRequest(id uuid.UUID) error {
	if err := s.requests.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	return nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, &apperrors.ValidationError{Field: "start_date", Message: "invalid date format, expected YYYY-MM-DD"}
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, &apperrors.ValidationError{Field: "end_date", Message: "invalid date format, expected YYYY-MM-DD"}
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, &apperrors.ValidationError{Field: "end_date", Message: "end date must be on or after start date"}
	}
	return startDate, endDate, nil
}

func convertLeaveRequestToResponse(request *models.LeaveRequest) *LeaveRequestResponse {
	resp := &LeaveRequestResponse{
		ID:                 request.ID,
		EmployeeID:         request.EmployeeID,
		LeaveTypeID:        request.LeaveTypeID,
		StartDate:          request.StartDate.Format(DateLayout),
		EndDate:            request.EndDate.Format(DateLayout),
		DaysRequested:      request.DaysRequested,
		Reason:             request.Reason,
		TeamLeadApproval:   request.TeamLeadApproval,
		HRApproval:         request.HRApproval,
		ApprovedByTeamLead: request.ApprovedByTeamLeadID,
		ApprovedByHR:       request.ApprovedByHRID,
		LeaveStatus:        request.LeaveStatus,
		CreatedAt:          request.CreatedAt.Format(time.RFC3339),
	}
	if request.Employee != nil {
		resp.EmployeeEmail = request.Employee.Email
	}
	if request.LeaveType != nil {
		resp.LeaveTypeName = request.LeaveType.Name
	}
	return resp
}
