package models

import "time"

// Project represents a manually curated portfolio project.
// It corresponds to the 'projects' table.
type Project struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	Technologies string    `gorm:"not null" json:"technologies"` // comma-separated list
	GithubURL    *string   `gorm:"" json:"github_url,omitempty"`  // Nullable
	LiveURL      *string   `gorm:"" json:"live_url,omitempty"`    // Nullable
	ImageURL     *string   `gorm:"" json:"image_url,omitempty"`   // Nullable
	Featured     bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	Order        int       `gorm:"column:display_order;not null;default:0" json:"order"`
}

// TableName explicitly sets the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// TechnologyList splits the comma-separated technologies column into
// trimmed tokens.
func (p Project) TechnologyList() []string {
	return SplitTechnologies(p.Technologies)
}
