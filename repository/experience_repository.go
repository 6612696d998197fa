package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
)

// ExperienceRepository handles database operations for Experience entities
type ExperienceRepository struct {
	DB *gorm.DB
}

// NewExperienceRepository creates a new instance of ExperienceRepository
func NewExperienceRepository(db *gorm.DB) *ExperienceRepository {
	return &ExperienceRepository{DB: db}
}

// Create creates a new experience record in the database
func (r *ExperienceRepository) Create(experience *models.Experience) error {
	if err := r.DB.Create(experience).Error; err != nil {
		return fmt.Errorf("failed to create experience %s: %w", experience.Title, err)
	}
	return nil
}

// ListAll retrieves all experiences ordered by their display order
func (r *ExperienceRepository) ListAll() ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.DB.Order("display_order").Find(&experiences).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	return experiences, nil
}
