package services_test

import (
	"testing"

	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"github.com/pajakdesk/pajakdesk/internal/types"
)

func TestCreateClientRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	created, err := services.CreateClient(db, services.ClientInput{
		Name:          "Test Co",
		Type:          models.ClientTypeCompany,
		NPWP:          "01.111.111.1-111.000",
		ContactPerson: "Jane Doe",
		Phone:         "+62-21-555-0100",
		Email:         "finance@testco.example",
		Status:        models.ClientStatusActive,
		Services:      types.FlexList[string]{"PPh 21", "PPN"},
	})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected a generated id")
	}

	loaded, err := services.GetClient(db, created.ID)
	if err != nil {
		t.Fatalf("GetClient failed: %v", err)
	}
	if loaded.Name != "Test Co" || loaded.Type != models.ClientTypeCompany {
		t.Errorf("Round trip mismatch: got %q/%q", loaded.Name, loaded.Type)
	}
	if loaded.NPWP != "01.111.111.1-111.000" || loaded.ContactPerson != "Jane Doe" {
		t.Errorf("Round trip mismatch: got %q/%q", loaded.NPWP, loaded.ContactPerson)
	}
	if len(loaded.Services) != 2 {
		t.Errorf("Expected 2 services, got %d", len(loaded.Services))
	}
}

func TestUpdateClientPreservesID(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Before Co")

	updated, err := services.UpdateClient(db, client.ID, services.ClientInput{
		Name:          "After Co",
		Type:          models.ClientTypePartnership,
		NPWP:          client.NPWP,
		ContactPerson: "John Roe",
		Status:        models.ClientStatusInactive,
	})
	if err != nil {
		t.Fatalf("UpdateClient failed: %v", err)
	}
	if updated.ID != client.ID {
		t.Errorf("Expected id %s preserved, got %s", client.ID, updated.ID)
	}
	if updated.Name != "After Co" || updated.Status != models.ClientStatusInactive {
		t.Errorf("Update not applied: %q/%q", updated.Name, updated.Status)
	}
}

func TestUpdateClientNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.UpdateClient(db, "missing-id", services.ClientInput{
		Name:          "Nobody",
		Type:          models.ClientTypeIndividual,
		NPWP:          "02.222.222.2-222.000",
		ContactPerson: "No One",
	})
	if err == nil {
		t.Fatal("Expected not found error")
	}
	custom, ok := err.(*types.CustomError)
	if !ok || custom.Code != 404 {
		t.Errorf("Expected 404 CustomError, got %v", err)
	}
}

func TestCreateClientValidation(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.CreateClient(db, services.ClientInput{
		Name: "Missing Fields",
		Type: models.ClientTypeCompany,
	})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	_, err = services.CreateClient(db, services.ClientInput{
		Name:          "Bad Type",
		Type:          "Conglomerate",
		NPWP:          "03.333.333.3-333.000",
		ContactPerson: "Jane Doe",
	})
	if err == nil {
		t.Fatal("Expected unknown type error")
	}
}

func TestListClientsFiltering(t *testing.T) {
	db := setupTestDB(t)
	createTestClient(t, db, "Alpha Tax Co")
	createTestClient(t, db, "Beta Consulting")
	inactive, err := services.CreateClient(db, services.ClientInput{
		Name:          "Gamma Holdings",
		Type:          models.ClientTypePartnership,
		NPWP:          "04.444.444.4-444.000",
		ContactPerson: "Gary Gamma",
		Status:        models.ClientStatusInactive,
	})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	// Empty query and "all" sentinels pass everything
	all, err := services.ListClients(db, "", "all", "all")
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 clients, got %d", len(all))
	}

	// Case-insensitive substring on name
	byName, err := services.ListClients(db, "alpha", "", "")
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Alpha Tax Co" {
		t.Errorf("Expected Alpha Tax Co, got %v", byName)
	}

	// Substring on contact person
	byContact, err := services.ListClients(db, "gary", "", "")
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(byContact) != 1 || byContact[0].ID != inactive.ID {
		t.Errorf("Expected Gamma Holdings by contact, got %v", byContact)
	}

	// Status equality narrows
	actives, err := services.ListClients(db, "", "Active", "")
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(actives) != 2 {
		t.Errorf("Expected 2 active clients, got %d", len(actives))
	}

	// Filters compose with AND
	both, err := services.ListClients(db, "gamma", "Active", "")
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(both) != 0 {
		t.Errorf("Expected no active gamma clients, got %d", len(both))
	}
}

func TestClientStats(t *testing.T) {
	db := setupTestDB(t)

	// Empty table: percentages must be zero, not NaN
	empty, err := services.GetClientStats(db)
	if err != nil {
		t.Fatalf("GetClientStats failed: %v", err)
	}
	if empty.Total != 0 || empty.ActivePercent != 0 {
		t.Errorf("Expected zeroed stats on empty table, got %+v", empty)
	}

	createTestClient(t, db, "One")
	createTestClient(t, db, "Two")
	createTestClient(t, db, "Three")
	if _, err := services.CreateClient(db, services.ClientInput{
		Name:          "Four",
		Type:          models.ClientTypeIndividual,
		NPWP:          "05.555.555.5-555.000",
		ContactPerson: "Frank Four",
		Status:        models.ClientStatusInactive,
	}); err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	stats, err := services.GetClientStats(db)
	if err != nil {
		t.Fatalf("GetClientStats failed: %v", err)
	}
	if stats.Total != 4 || stats.Active != 3 {
		t.Errorf("Expected 4 total / 3 active, got %d/%d", stats.Total, stats.Active)
	}
	if stats.ActivePercent != 75.0 {
		t.Errorf("Expected 75.0 active percent, got %v", stats.ActivePercent)
	}
	if stats.Companies != 3 || stats.Individuals != 1 {
		t.Errorf("Type breakdown wrong: %+v", stats)
	}
}

func TestListActiveClientOptions(t *testing.T) {
	db := setupTestDB(t)
	createTestClient(t, db, "Zeta Co")
	createTestClient(t, db, "Acme Co")
	if _, err := services.CreateClient(db, services.ClientInput{
		Name:          "Dormant Co",
		Type:          models.ClientTypeCompany,
		NPWP:          "06.666.666.6-666.000",
		ContactPerson: "Dora Dormant",
		Status:        models.ClientStatusInactive,
	}); err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	options, err := services.ListActiveClientOptions(db)
	if err != nil {
		t.Fatalf("ListActiveClientOptions failed: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(options))
	}
	// Ordered by name ascending
	if options[0].Name != "Acme Co" || options[1].Name != "Zeta Co" {
		t.Errorf("Expected name ordering, got %v", options)
	}
}
