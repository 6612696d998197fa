package handlers

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nnorato/portfoliobackend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	// a :memory: database exists per connection; keep the pool at one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.BlogPost{},
		&models.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer("../web/templates")
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	return renderer
}

// failingMailer simulates an unreachable mail transport.
type failingMailer struct {
	notifications int
	confirmations int
}

func (m *failingMailer) SendContactNotification(_ *models.ContactMessage) error {
	m.notifications++
	return errors.New("dial tcp: connection refused")
}

func (m *failingMailer) SendContactConfirmation(_ *models.ContactMessage) error {
	m.confirmations++
	return errors.New("dial tcp: connection refused")
}
