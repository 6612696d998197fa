package database

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nnorato/portfoliobackend/models"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
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

	if err := AutoMigrateModels(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSeedIfEmptyPopulatesOnce(t *testing.T) {
	db := newSeedTestDB(t)

	if err := SeedIfEmpty(db); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	var skills, experiences, educations int64
	db.Model(&models.Skill{}).Count(&skills)
	db.Model(&models.Experience{}).Count(&experiences)
	db.Model(&models.Education{}).Count(&educations)

	if skills == 0 {
		t.Fatal("expected seeded skills")
	}
	if experiences != 3 {
		t.Errorf("expected 3 experiences, got %d", experiences)
	}
	if educations != 1 {
		t.Errorf("expected 1 education row, got %d", educations)
	}

	// a second run must not duplicate anything
	if err := SeedIfEmpty(db); err != nil {
		t.Fatalf("second SeedIfEmpty failed: %v", err)
	}
	var skillsAfter int64
	db.Model(&models.Skill{}).Count(&skillsAfter)
	if skillsAfter != skills {
		t.Errorf("seeding is not idempotent: %d -> %d skills", skills, skillsAfter)
	}
}

func TestSeedSkippedWhenSkillsExist(t *testing.T) {
	db := newSeedTestDB(t)

	manual := models.Skill{Category: "Lenguajes", Name: "Go", Proficiency: 70}
	if err := db.Create(&manual).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := SeedIfEmpty(db); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	var skills, experiences int64
	db.Model(&models.Skill{}).Count(&skills)
	db.Model(&models.Experience{}).Count(&experiences)
	if skills != 1 {
		t.Errorf("expected the single manual skill, got %d", skills)
	}
	if experiences != 0 {
		t.Errorf("expected no seeded experiences, got %d", experiences)
	}
}
