package service

import (
	"errors"
	"fmt"

	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"
	"ems-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveTypeService handles business logic for leave types
type LeaveTypeService struct {
	repo      repository.LeaveTypeRepositoryInterface
	validator *validator.Validate
}

// NewLeaveTypeService creates a new leave type service
func NewLeaveTypeService(repo repository.LeaveTypeRepositoryInterface, validator *validator.Validate) *LeaveTypeService {
	return &LeaveTypeService{repo: repo, validator: validator}
}

// CreateLeaveTypeRequest represents the data needed to create a leave type
type CreateLeaveTypeRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// UpdateLeaveTypeRequest represents the data needed to update a leave type
type UpdateLeaveTypeRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=50"`
	Status *string `json:"status"`
}

// LeaveTypeResponse represents the response data for a leave type
type LeaveTypeResponse struct {
	ID     uuid.UUID           `json:"id"`
	Name   string              `json:"name"`
	Status models.EntityStatus `json:"status"`
}

// CreateLeaveType creates a new leave type
func (s *LeaveTypeService) CreateLeaveType(req *CreateLeaveTypeRequest) (*LeaveTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrLeaveTypeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing leave type: %w", err)
	}

	leaveType := &models.LeaveType{
		Name:   req.Name,
		Status: models.StatusActive,
	}
	if err := s.repo.Create(leaveType); err != nil {
		return nil, fmt.Errorf("failed to create leave type: %w", err)
	}

	return convertLeaveTypeToResponse(leaveType), nil
}

// GetLeaveType retrieves a leave type by ID
func (s *LeaveTypeService) GetLeaveType(id uuid.UUID) (*LeaveTypeResponse, error) {
	leaveType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to load leave type: %w", err)
	}
	return convertLeaveTypeToResponse(leaveType), nil
}

// UpdateLeaveType updates a leave type's name or lifecycle status
func (s *LeaveTypeService) UpdateLeaveType(id uuid.UUID, req *UpdateLeaveTypeRequest) (*LeaveTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	leaveType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to load leave type: %w", err)
	}

	if req.Name != nil {
		leaveType.Name = *req.Name
	}
	if req.Status != nil {
		status := models.EntityStatus(*req.Status)
		if !status.IsValid() {
			return nil, &apperrors.InvalidInputError{Field: "status", Value: *req.Status}
		}
		leaveType.Status = status
	}

	if err := s.repo.Update(leaveType); err != nil {
		return nil, fmt.Errorf("failed to update leave type: %w", err)
	}
	return convertLeaveTypeToResponse(leaveType), nil
}

// ListLeaveTypes retrieves all leave types that are not removed
func (s *LeaveTypeService) ListLeaveTypes() ([]LeaveTypeResponse, error) {
	leaveTypes, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]LeaveTypeResponse, 0, len(leaveTypes))
	for i := range leaveTypes {
		responses = append(responses, *convertLeaveTypeToResponse(&leaveTypes[i]))
	}
	return responses, nil
}

// DeleteLeaveType soft-removes a leave type
func (s *LeaveTypeService) DeleteLeaveType(id uuid.UUID) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeaveTypeNotFound
		}
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	return nil
}

func convertLeaveTypeToResponse(leaveType *models.LeaveType) *LeaveTypeResponse {
	return &LeaveTypeResponse{
		ID:     leaveType.ID,
		Name:   leaveType.Name,
		Status: leaveType.Status,
	}
}
