package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
)

// SkillGroup is one category of skills, in the category's own display order.
type SkillGroup struct {
	Category string
	Skills   []models.Skill
}

// SkillRepository handles database operations for Skill entities
type SkillRepository struct {
	DB *gorm.DB
}

// NewSkillRepository creates a new instance of SkillRepository
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

// Create creates a new skill record in the database
func (r *SkillRepository) Create(skill *models.Skill) error {
	if err := r.DB.Create(skill).Error; err != nil {
		return fmt.Errorf("failed to create skill %s: %w", skill.Name, err)
	}
	return nil
}

// ListAll retrieves all skills ordered by category, then display order
func (r *SkillRepository) ListAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.DB.Order("category").Order("display_order").Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// ListGroupedByCategory returns skills grouped by their category, keeping the
// per-category display order intact. Categories appear in the order ListAll
// yields them.
func (r *SkillRepository) ListGroupedByCategory() ([]SkillGroup, error) {
	skills, err := r.ListAll()
	if err != nil {
		return nil, err
	}

	var groups []SkillGroup
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups, nil
}
