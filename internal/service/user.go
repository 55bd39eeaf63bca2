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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for the employee directory
type UserService struct {
	repo      repository.UserRepositoryInterface
	teams     repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, teams repository.TeamRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, teams: teams, validator: validator}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Email     string     `json:"email" validate:"required,email,max=255"`
	Password  string     `json:"password" validate:"required,min=8"`
	FirstName string     `json:"first_name" validate:"required,max=100"`
	LastName  string     `json:"last_name" validate:"required,max=100"`
	Role      *string    `json:"role" example:"employee" default:"employee"`
	TeamID    *uuid.UUID `json:"team_id"`
}

// UpdateUserRequest represents the data needed to update a user
type UpdateUserRequest struct {
	FirstName *string    `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string    `json:"last_name" validate:"omitempty,max=100"`
	Role      *string    `json:"role"`
	TeamID    *uuid.UUID `json:"team_id"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	Role      models.Role         `json:"role"`
	TeamID    *uuid.UUID          `json:"team_id,omitempty"`
	TeamName  string              `json:"team_name,omitempty"`
	Status    models.EntityStatus `json:"status"`
	CreatedAt string              `json:"created_at"`
}

// CreateUser creates a new user
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	role := models.RoleEmployee
	if req.Role != nil {
		role = models.Role(*req.Role)
		if !role.IsValid() {
			return nil, &apperrors.InvalidInputError{Field: "role", Value: *req.Role}
		}
	}

	if req.TeamID != nil {
		if _, err := s.teams.GetActiveByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to load team: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		TeamID:       req.TeamID,
		Status:       models.StatusActive,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return convertUserToResponse(user), nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return convertUserToResponse(user), nil
}

// GetActor loads the active user model for an authenticated actor ID
func (s *UserService) GetActor(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// UpdateUser updates a user's name, role or team
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.IsValid() {
			return nil, &apperrors.InvalidInputError{Field: "role", Value: *req.Role}
		}
		user.Role = role
	}
	if req.TeamID != nil {
		if _, err := s.teams.GetActiveByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to load team: %w", err)
		}
		user.TeamID = req.TeamID
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return convertUserToResponse(user), nil
}

// ListUsers retrieves all users with pagination
func (s *UserService) ListUsers(limit, offset int) ([]UserResponse, int64, error) {
	users, total, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *convertUserToResponse(&users[i]))
	}
	return responses, total, nil
}

// DeleteUser soft-removes a user
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func convertUserToResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		TeamID:    user.TeamID,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.Team != nil {
		resp.TeamName = user.Team.Name
	}
	return resp
}
