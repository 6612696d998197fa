package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
)

// EducationRepository handles database operations for Education entities
type EducationRepository struct {
	DB *gorm.DB
}

// NewEducationRepository creates a new instance of EducationRepository
func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{DB: db}
}

// Create creates a new education record in the database
func (r *EducationRepository) Create(education *models.Education) error {
	if err := r.DB.Create(education).Error; err != nil {
		return fmt.Errorf("failed to create education %s: %w", education.Degree, err)
	}
	return nil
}

// ListAll retrieves all education entries ordered by their display order
func (r *EducationRepository) ListAll() ([]models.Education, error) {
	var educations []models.Education
	err := r.DB.Order("display_order").Find(&educations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list educations: %w", err)
	}
	return educations, nil
}
