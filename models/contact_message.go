package models

import "time"

// ContactMessage stores a contact form submission. Write-only from the public
// side; the read flag has no admin UI yet and stays false.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
}

// TableName explicitly sets the table name for GORM.
func (ContactMessage) TableName() string {
	return "contact_messages"
}
