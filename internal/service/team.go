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

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{repo: repo, users: users, validator: validator}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Description string     `json:"description" validate:"max=500"`
	LeadID      *uuid.UUID `json:"lead_id"`
}

// UpdateTeamRequest represents the data needed to update a team
type UpdateTeamRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	LeadID      *uuid.UUID `json:"lead_id"`
}

// TeamResponse represents the response data for a team
type TeamResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	LeadID      *uuid.UUID          `json:"lead_id,omitempty"`
	Status      models.EntityStatus `json:"status"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	if req.LeadID != nil {
		if err := s.checkLead(*req.LeadID); err != nil {
			return nil, err
		}
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		LeadID:      req.LeadID,
		Status:      models.StatusActive,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return convertTeamToResponse(team), nil
}

// GetTeam retrieves a team by ID
func (s *TeamService) GetTeam(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	return convertTeamToResponse(team), nil
}

// UpdateTeam updates a team's name, description or lead
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.LeadID != nil {
		if err := s.checkLead(*req.LeadID); err != nil {
			return nil, err
		}
		team.LeadID = req.LeadID
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return convertTeamToResponse(team), nil
}

// ListTeams retrieves all teams with pagination
func (s *TeamService) ListTeams(limit, offset int) ([]TeamResponse, int64, error) {
	teams, total, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *convertTeamToResponse(&teams[i]))
	}
	return responses, total, nil
}

// DeleteTeam soft-removes a team
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *TeamService) checkLead(leadID uuid.UUID) error {
	lead, err := s.users.GetActiveByID(leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to load lead: %w", err)
	}
	if lead.Role != models.RoleTeamLead && lead.Role != models.RoleAdmin {
		return &apperrors.ValidationError{Field: "lead_id", Message: "user is not a team lead"}
	}
	return nil
}

func convertTeamToResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		LeadID:      team.LeadID,
		Status:      team.Status,
	}
}
