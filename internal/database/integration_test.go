// integration_test.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package database_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pajakdesk/pajakdesk/internal/config"
	"github.com/pajakdesk/pajakdesk/internal/database"
	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"github.com/pajakdesk/pajakdesk/internal/storage"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func imageOrDefault(envKey, fallback string) string {
	if image := os.Getenv(envKey); image != "" {
		return image
	}
	return fallback
}

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageOrDefault("DB_IMAGE", "mariadb:11.4"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	runAgainstDatabase(t, cfg)
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageOrDefault("POSTGRES_IMAGE", "postgres:17-alpine"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	runAgainstDatabase(t, cfg)
}

// runAgainstDatabase connects, migrates and runs the shared scenario set
func runAgainstDatabase(t *testing.T, cfg *config.Config) {
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Run("ClientLifecycle", func(t *testing.T) {
		testClientLifecycle(t, db)
	})

	t.Run("ScheduleDayFilter", func(t *testing.T) {
		testScheduleDayFilter(t, db)
	})

	t.Run("DocumentRoundTrip", func(t *testing.T) {
		testDocumentRoundTrip(t, db)
	})
}

// testClientLifecycle tests creating, updating and aggregating clients
func testClientLifecycle(t *testing.T, db *gorm.DB) {
	client, err := services.CreateClient(db, services.ClientInput{
		Name:          "Integrasi Jaya PT",
		Type:          models.ClientTypeCompany,
		NPWP:          "01.234.567.8-901.000",
		ContactPerson: "Budi Santoso",
		Status:        models.ClientStatusActive,
	})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}
	if client.ID == "" {
		t.Fatal("Expected a generated client id")
	}

	updated, err := services.UpdateClient(db, client.ID, services.ClientInput{
		Name:          "Integrasi Jaya PT (Tbk)",
		Type:          models.ClientTypeCompany,
		NPWP:          client.NPWP,
		ContactPerson: client.ContactPerson,
		Status:        models.ClientStatusInactive,
	})
	if err != nil {
		t.Fatalf("UpdateClient failed: %v", err)
	}
	if updated.ID != client.ID {
		t.Errorf("Expected id %s preserved, got %s", client.ID, updated.ID)
	}

	stats, err := services.GetClientStats(db)
	if err != nil {
		t.Fatalf("GetClientStats failed: %v", err)
	}
	if stats.Total < 1 {
		t.Errorf("Expected at least one client in stats, got %d", stats.Total)
	}
}

// testScheduleDayFilter tests the calendar-day query against a real dialect
func testScheduleDayFilter(t *testing.T, db *gorm.DB) {
	client, err := services.CreateClient(db, services.ClientInput{
		Name:          "Kalender Co",
		Type:          models.ClientTypeCompany,
		NPWP:          "02.234.567.8-901.000",
		ContactPerson: "Sari Dewi",
	})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	_, err = services.CreateSchedule(db, services.ScheduleInput{
		ClientID:      client.ID,
		Title:         "Konsultasi pajak tahunan",
		Type:          "Consultation",
		ScheduledDate: "2025-07-09",
		ScheduledTime: "14:30",
	})
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}

	day := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)
	rows, err := services.ListSchedules(db, &day, "", "", "")
	if err != nil {
		t.Fatalf("ListSchedules failed: %v", err)
	}
	found := false
	for _, row := range rows {
		if row.Title == "Konsultasi pajak tahunan" {
			found = true
		}
	}
	if !found {
		t.Error("Expected the schedule to match its calendar day")
	}
}

// testDocumentRoundTrip tests file-backed document creation and stats
func testDocumentRoundTrip(t *testing.T, db *gorm.DB) {
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	client, err := services.CreateClient(db, services.ClientInput{
		Name:          "Arsip Co",
		Type:          models.ClientTypeCompany,
		NPWP:          "03.234.567.8-901.000",
		ContactPerson: "Rina Wati",
	})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	payload := "SPT Masa PPN Juli 2025"
	doc, err := services.CreateDocument(db, store, services.DocumentInput{
		Name:     "spt-masa-ppn-072025.pdf",
		ClientID: client.ID,
		Type:     "SPT",
		Category: "Tax Filing",
	}, strings.NewReader(payload), "spt-masa-ppn-072025.pdf")
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if doc.FileSize != int64(len(payload)) {
		t.Errorf("Expected file size %d, got %d", len(payload), doc.FileSize)
	}

	size, err := store.Stat(doc.FilePath)
	if err != nil {
		t.Fatalf("Stored object missing: %v", err)
	}
	if size != int64(len(payload)) {
		t.Errorf("Expected stored size %d, got %d", len(payload), size)
	}
}
