package models

// Experience represents a work experience entry. Start and end dates are
// free-text strings, not calendar dates; a nil EndDate marks an ongoing role.
type Experience struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Company     string  `gorm:"not null" json:"company"`
	Location    string  `gorm:"" json:"location"`
	StartDate   string  `gorm:"not null" json:"start_date"`
	EndDate     *string `gorm:"" json:"end_date,omitempty"` // Nullable (ongoing)
	Description string  `gorm:"" json:"description"`
	Order       int     `gorm:"column:display_order;not null;default:0" json:"order"`
}

// TableName explicitly sets the table name for GORM.
func (Experience) TableName() string {
	return "experiences"
}
