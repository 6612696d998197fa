package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
)

// ProjectRepository handles database operations for Project entities
type ProjectRepository struct {
	DB *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// Create creates a new project record in the database
func (r *ProjectRepository) Create(project *models.Project) error {
	if err := r.DB.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project %s: %w", project.Title, err)
	}
	return nil
}

// ListAll retrieves all projects ordered by their display order
func (r *ProjectRepository) ListAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.DB.Order("display_order").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListFeatured retrieves featured projects ordered by display order.
// A limit of 0 means no limit.
func (r *ProjectRepository) ListFeatured(limit int) ([]models.Project, error) {
	var projects []models.Project
	q := r.DB.Where("featured = ?", true).Order("display_order")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list featured projects: %w", err)
	}
	return projects, nil
}

// GetByID retrieves a project by its ID
func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.DB.First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project by ID %d: %w", id, err)
	}
	return &project, nil
}
