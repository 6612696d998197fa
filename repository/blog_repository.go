package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
)

// BlogRepository handles database operations for BlogPost entities. It is the
// only repository with update and delete; every other entity is append-only
// from the application's point of view.
type BlogRepository struct {
	DB *gorm.DB
}

// NewBlogRepository creates a new instance of BlogRepository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

// Create creates a new blog post. The display order is assigned from the
// current post count, matching how posts have always been numbered.
func (r *BlogRepository) Create(post *models.BlogPost) error {
	var count int64
	if err := r.DB.Model(&models.BlogPost{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count blog posts: %w", err)
	}
	post.Order = int(count) + 1

	if err := r.DB.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create blog post %s: %w", post.Title, err)
	}
	return nil
}

// ListAll retrieves all blog posts, newest first
func (r *BlogRepository) ListAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.DB.Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// GetByID retrieves a blog post by its ID
func (r *BlogRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.DB.First(&post, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get blog post by ID %d: %w", id, err)
	}
	return &post, nil
}

// Update replaces title, content and summary of an existing post and
// refreshes its updated_at timestamp. Last write wins on concurrent edits.
func (r *BlogRepository) Update(postID uint, title, content, summary string) error {
	updates := map[string]interface{}{
		"title":      title,
		"content":    content,
		"summary":    summary,
		"updated_at": time.Now(),
	}

	result := r.DB.Model(&models.BlogPost{}).Where("id = ?", postID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update blog post ID %d: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a blog post by ID
func (r *BlogRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.BlogPost{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog post ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
