package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.Client{},
		&models.Document{},
		&models.Consultation{},
		&models.SPTRecord{},
		&models.SPTForm{},
		&models.Workflow{},
		&models.Schedule{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// createTestClient inserts one client and returns it
func createTestClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()
	client, err := services.CreateClient(db, services.ClientInput{
		Name:          name,
		Type:          models.ClientTypeCompany,
		NPWP:          "01.111.111.1-111.000",
		ContactPerson: "Jane Doe",
		Status:        models.ClientStatusActive,
	})
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return client
}
