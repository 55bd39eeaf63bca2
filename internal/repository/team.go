package repository

import (
	"ems-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetActiveByID retrieves a team by ID, excluding soft-removed records
func (r *TeamRepository) GetActiveByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ? AND status = ?", id, models.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves all teams with pagination
func (r *TeamRepository) List(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{}).Where("status <> ?", models.StatusRemoved)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SoftDelete marks a team as removed without deleting the row
func (r *TeamRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", id).Update("status", models.StatusRemoved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
