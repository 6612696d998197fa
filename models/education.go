package models

// Education represents an education entry on the about page.
type Education struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Institution string `gorm:"not null" json:"institution"`
	Degree      string `gorm:"not null" json:"degree"`
	Field       string `gorm:"" json:"field"`
	Year        string `gorm:"" json:"year"` // free text, e.g. "2026"
	Description string `gorm:"" json:"description"`
	Order       int    `gorm:"column:display_order;not null;default:0" json:"order"`
}

// TableName explicitly sets the table name for GORM.
func (Education) TableName() string {
	return "educations"
}
