package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
)

// ContactRepository handles database operations for ContactMessage entities
type ContactRepository struct {
	DB *gorm.DB
}

// NewContactRepository creates a new instance of ContactRepository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

// Create stores a contact form submission
func (r *ContactRepository) Create(msg *models.ContactMessage) error {
	if err := r.DB.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message from %s: %w", msg.Email, err)
	}
	return nil
}

// ListAll retrieves all contact messages, newest first. No route exposes this
// yet; it exists so the inbox can be read from a shell or a future admin view.
func (r *ContactRepository) ListAll() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := r.DB.Order("created_at DESC").Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return msgs, nil
}
