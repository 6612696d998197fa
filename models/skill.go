package models

// Skill represents a single skill shown on the about page, grouped by its
// free-text category at read time.
type Skill struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Category    string `gorm:"not null" json:"category"` // Backend, Frontend, Herramientas, ...
	Name        string `gorm:"not null" json:"name"`
	Proficiency int    `gorm:"not null;default:80" json:"proficiency"` // 0-100
	Order       int    `gorm:"column:display_order;not null;default:0" json:"order"`
}

// TableName explicitly sets the table name for GORM.
func (Skill) TableName() string {
	return "skills"
}
