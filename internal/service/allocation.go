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

// MonthLayout is the wire format for allocation months
const MonthLayout = "2006-01"

// AllocationService handles provisioning of leave allocations. Balance
// mutations go through the Ledger, never through this service.
type AllocationService struct {
	allocations repository.LeaveAllocationRepositoryInterface
	users       repository.UserRepositoryInterface
	leaveTypes  repository.LeaveTypeRepositoryInterface
	ledger      *Ledger
	validator   *validator.Validate
}

// NewAllocationService creates a new allocation service
func NewAllocationService(
	allocations repository.LeaveAllocationRepositoryInterface,
	users repository.UserRepositoryInterface,
	leaveTypes repository.LeaveTypeRepositoryInterface,
	ledger *Ledger,
	validator *validator.Validate,
) *AllocationService {
	return &AllocationService{
		allocations: allocations,
		users:       users,
		leaveTypes:  leaveTypes,
		ledger:      ledger,
		validator:   validator,
	}
}

// CreateAllocationRequest represents the data needed to provision an allocation
type CreateAllocationRequest struct {
	EmployeeID    uuid.UUID `json:"employee_id" validate:"required"`
	LeaveTypeID   uuid.UUID `json:"leave_type_id" validate:"required"`
	ValidMonth    string    `json:"valid_month" validate:"required"`
	AllocatedDays int       `json:"allocated_days" validate:"gte=0"`
}

// UpdateAllocationRequest represents the data needed to update an allocation's
// quota. UsedDays is owned by the ledger and cannot be set here.
type UpdateAllocationRequest struct {
	AllocatedDays *int `json:"allocated_days" validate:"omitempty,gte=0"`
}

// AllocationResponse represents the response data for an allocation
type AllocationResponse struct {
	ID            uuid.UUID `json:"id"`
	EmployeeID    uuid.UUID `json:"employee_id"`
	LeaveTypeID   uuid.UUID `json:"leave_type_id"`
	LeaveTypeName string    `json:"leave_type_name,omitempty"`
	ValidMonth    string    `json:"valid_month"`
	AllocatedDays int       `json:"allocated_days"`
	UsedDays      int       `json:"used_days"`
	RemainingDays int       `json:"remaining_days"`
}

// CreateAllocation provisions a monthly allocation for an employee and leave
// type. At most one ACTIVE allocation may exist per triple.
func (s *AllocationService) CreateAllocation(req *CreateAllocationRequest) (*AllocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	month, err := parseMonth(req.ValidMonth)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetActiveByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	if _, err := s.leaveTypes.GetActiveByID(req.LeaveTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to load leave type: %w", err)
	}

	if _, err := s.allocations.GetActiveByTriple(req.EmployeeID, req.LeaveTypeID, month); err == nil {
		return nil, apperrors.ErrAllocationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing allocation: %w", err)
	}

	allocation := &models.LeaveAllocation{
		EmployeeID:    req.EmployeeID,
		LeaveTypeID:   req.LeaveTypeID,
		ValidMonth:    month,
		AllocatedDays: req.AllocatedDays,
		UsedDays:      0,
		Status:        models.StatusActive,
	}
	if err := s.allocations.Create(allocation); err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	return convertAllocationToResponse(allocation), nil
}

// GetAllocation retrieves a single allocation
func (s *AllocationService) GetAllocation(id uuid.UUID) (*AllocationResponse, error) {
	allocation, err := s.allocations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to load allocation: %w", err)
	}
	return convertAllocationToResponse(allocation), nil
}

// GetAllocationModel retrieves the underlying model, for authorization checks
func (s *AllocationService) GetAllocationModel(id uuid.UUID) (*models.LeaveAllocation, error) {
	allocation, err := s.allocations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to load allocation: %w", err)
	}
	return allocation, nil
}

// UpdateAllocation changes the allocated quota. The new quota may not drop
// below the days already used.
func (s *AllocationService) UpdateAllocation(id uuid.UUID, req *UpdateAllocationRequest) (*AllocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	allocation, err := s.allocations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to load allocation: %w", err)
	}

	if req.AllocatedDays != nil {
		if *req.AllocatedDays < allocation.UsedDays {
			return nil, &apperrors.ValidationError{
				Field:   "allocated_days",
				Message: fmt.Sprintf("cannot be lower than used days (%d)", allocation.UsedDays),
			}
		}
		allocation.AllocatedDays = *req.AllocatedDays
	}

	if err := s.allocations.Save(allocation); err != nil {
		return nil, fmt.Errorf("failed to save allocation: %w", err)
	}
	return convertAllocationToResponse(allocation), nil
}

// ListAllocations retrieves all allocations with pagination
func (s *AllocationService) ListAllocations(limit, offset int) ([]AllocationResponse, int64, error) {
	allocations, total, err := s.allocations.List(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list allocations: %w", err)
	}
	return convertAllocationsToResponses(allocations), total, nil
}

// ListAllocationsByEmployee retrieves an employee's active allocations
func (s *AllocationService) ListAllocationsByEmployee(employeeID uuid.UUID) ([]AllocationResponse, error) {
	allocations, err := s.allocations.ListByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	return convertAllocationsToResponses(allocations), nil
}

// RemainingDays answers the balance query for an (employee, leave type, month)
// triple
func (s *AllocationService) RemainingDays(employeeID, leaveTypeID uuid.UUID, month time.Time) (int, error) {
	return s.ledger.RemainingDays(employeeID, leaveTypeID, month)
}

// DeleteAllocation soft-removes an allocation
func (s *AllocationService) DeleteAllocation(id uuid.UUID) error {
	if err := s.allocations.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAllocationNotFound
		}
		return fmt.Errorf("failed to delete allocation: %w", err)
	}
	return nil
}

func parseMonth(value string) (time.Time, error) {
	month, err := time.Parse(MonthLayout, value)
	if err != nil {
		// accept full dates too, normalized to the first of the month
		day, dayErr := time.Parse(DateLayout, value)
		if dayErr != nil {
			return time.Time{}, &apperrors.ValidationError{Field: "valid_month", Message: "invalid month format, expected YYYY-MM"}
		}
		month = day
	}
	return models.MonthStart(month), nil
}

func convertAllocationToResponse(allocation *models.LeaveAllocation) *AllocationResponse {
	resp := &AllocationResponse{
		ID:            allocation.ID,
		EmployeeID:    allocation.EmployeeID,
		LeaveTypeID:   allocation.LeaveTypeID,
		ValidMonth:    allocation.ValidMonth.Format(MonthLayout),
		AllocatedDays: allocation.AllocatedDays,
		UsedDays:      allocation.UsedDays,
		RemainingDays: allocation.RemainingDays(),
	}
	if allocation.LeaveType != nil {
		resp.LeaveTypeName = allocation.LeaveType.Name
	}
	return resp
}

func convertAllocationsToResponses(allocations []models.LeaveAllocation) []AllocationResponse {
	responses := make([]AllocationResponse, 0, len(allocations))
	for i := range allocations {
		responses = append(responses, *convertAllocationToResponse(&allocations[i]))
	}
	return responses
}
