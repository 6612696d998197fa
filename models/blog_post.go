package models

import "time"

// BlogPost represents a blog entry. Content is long markdown-like text.
// UpdatedAt is refreshed by the repository on every edit.
type BlogPost struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Summary   string    `gorm:"" json:"summary"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
}

// TableName explicitly sets the table name for GORM.
func (BlogPost) TableName() string {
	return "blog_posts"
}
