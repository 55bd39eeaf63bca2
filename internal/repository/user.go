package repository

import (
	"ems-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Team").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetActiveByID retrieves a user by ID, excluding soft-removed records
func (r *UserRepository) GetActiveByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Team").First(&user, "id = ? AND status = ?", id, models.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Team").First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users with pagination
func (r *UserRepository) List(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).Where("status <> ?", models.StatusRemoved)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Team").Limit(limit).Offset(offset).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListByTeamID retrieves all active users belonging to a team
func (r *UserRepository) ListByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id = ? AND status = ?", teamID, models.StatusActive).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SoftDelete marks a user as removed without deleting the row
func (r *UserRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("status", models.StatusRemoved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
