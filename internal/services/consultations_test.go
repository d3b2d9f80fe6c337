package services_test

import (
	"testing"

	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/services"
)

func TestCreateConsultationOptionalDate(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Consult Co")

	// Without a date the session stays unscheduled
	open, err := services.CreateConsultation(db, services.ConsultationInput{
		ClientID: client.ID,
		Topic:    "Transfer pricing question",
	})
	if err != nil {
		t.Fatalf("CreateConsultation failed: %v", err)
	}
	if open.ConsultationDate != nil {
		t.Errorf("Expected null date, got %v", open.ConsultationDate)
	}
	if open.Type != models.ConsultationTypeMeeting || open.Status != models.ConsultationStatusScheduled {
		t.Errorf("Expected defaults, got %q/%q", open.Type, open.Status)
	}

	booked, err := services.CreateConsultation(db, services.ConsultationInput{
		ClientID:         client.ID,
		Topic:            "Year-end planning",
		ConsultationDate: "2025-11-03",
		ConsultationTime: "13:00",
		Type:             models.ConsultationTypeVideoCall,
	})
	if err != nil {
		t.Fatalf("CreateConsultation failed: %v", err)
	}
	if booked.ConsultationDate == nil || booked.ConsultationDate.Hour() != 13 {
		t.Errorf("Expected 13:00 session, got %v", booked.ConsultationDate)
	}
}

func TestListConsultationsByConsultant(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Consult Co")

	if _, err := services.CreateConsultation(db, services.ConsultationInput{
		ClientID:   client.ID,
		Topic:      "PPh 21 review",
		Consultant: "Siti",
	}); err != nil {
		t.Fatalf("CreateConsultation failed: %v", err)
	}
	if _, err := services.CreateConsultation(db, services.ConsultationInput{
		ClientID:   client.ID,
		Topic:      "PPN dispute",
		Consultant: "Rudi",
		Status:     models.ConsultationStatusCompleted,
	}); err != nil {
		t.Fatalf("CreateConsultation failed: %v", err)
	}

	rows, err := services.ListConsultations(db, "siti", "all", "all")
	if err != nil {
		t.Fatalf("ListConsultations failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Consultant != "Siti" {
		t.Errorf("Expected Siti's session, got %v", rows)
	}

	stats, err := services.GetConsultationStats(db)
	if err != nil {
		t.Fatalf("GetConsultationStats failed: %v", err)
	}
	if stats.Total != 2 || stats.Scheduled != 1 || stats.Completed != 1 {
		t.Errorf("Breakdown wrong: %+v", stats)
	}
}
