package services_test

import (
	"testing"
	"time"

	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/services"
)

func TestCreateScheduleCombinesDateAndTime(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Cal Co")

	schedule, err := services.CreateSchedule(db, services.ScheduleInput{
		ClientID:      client.ID,
		Title:         "Monthly filing review",
		Type:          "Meeting",
		ScheduledDate: "2025-07-09",
		ScheduledTime: "14:30",
	})
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}

	want := time.Date(2025, 7, 9, 14, 30, 0, 0, time.UTC)
	if !schedule.ScheduledDate.Equal(want) {
		t.Errorf("Expected %v, got %v", want, schedule.ScheduledDate)
	}
	// Dialog defaults
	if schedule.Status != models.ScheduleStatusPending {
		t.Errorf("Expected Pending default, got %q", schedule.Status)
	}
	if schedule.Duration != 60 || schedule.ReminderMinutes != 15 {
		t.Errorf("Expected default duration/reminder, got %d/%d", schedule.Duration, schedule.ReminderMinutes)
	}
}

func TestCreateScheduleDefaultsTimeToNine(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Cal Co")

	schedule, err := services.CreateSchedule(db, services.ScheduleInput{
		ClientID:      client.ID,
		Title:         "Deadline",
		Type:          "Reminder",
		ScheduledDate: "2025-07-10",
	})
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}
	if schedule.ScheduledDate.Hour() != 9 || schedule.ScheduledDate.Minute() != 0 {
		t.Errorf("Expected 09:00 default, got %v", schedule.ScheduledDate)
	}
}

func TestCreateScheduleRequiresDate(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Cal Co")

	_, err := services.CreateSchedule(db, services.ScheduleInput{
		ClientID: client.ID,
		Title:    "No date",
		Type:     "Meeting",
	})
	if err == nil {
		t.Fatal("Expected missing-date error")
	}
}

func TestListSchedulesByCalendarDay(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Cal Co")

	mk := func(title, date, clock string) {
		t.Helper()
		if _, err := services.CreateSchedule(db, services.ScheduleInput{
			ClientID:      client.ID,
			Title:         title,
			Type:          "Meeting",
			ScheduledDate: date,
			ScheduledTime: clock,
		}); err != nil {
			t.Fatalf("CreateSchedule failed: %v", err)
		}
	}
	mk("Morning visit", "2025-07-09", "08:00")
	mk("Late review", "2025-07-09", "23:30")
	mk("Next day", "2025-07-10", "00:15")

	day := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)
	rows, err := services.ListSchedules(db, &day, "", "", "")
	if err != nil {
		t.Fatalf("ListSchedules failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 entries on 2025-07-09, got %d", len(rows))
	}
	// Ordered by time ascending
	if rows[0].Title != "Morning visit" || rows[1].Title != "Late review" {
		t.Errorf("Expected time ordering, got %v, %v", rows[0].Title, rows[1].Title)
	}

	// Day filter composes with the text filter
	filtered, err := services.ListSchedules(db, &day, "late", "", "")
	if err != nil {
		t.Fatalf("ListSchedules failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Title != "Late review" {
		t.Errorf("Expected Late review only, got %v", filtered)
	}

	// No day filter returns everything
	all, err := services.ListSchedules(db, nil, "", "", "")
	if err != nil {
		t.Fatalf("ListSchedules failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(all))
	}
}

func TestUpdateSchedulePreservesID(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Cal Co")

	schedule, err := services.CreateSchedule(db, services.ScheduleInput{
		ClientID:      client.ID,
		Title:         "Original",
		Type:          "Meeting",
		ScheduledDate: "2025-07-09",
	})
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}

	updated, err := services.UpdateSchedule(db, schedule.ID, services.ScheduleInput{
		ClientID:      client.ID,
		Title:         "Rescheduled",
		Type:          "Meeting",
		Status:        models.ScheduleStatusDone,
		ScheduledDate: "2025-07-11",
		ScheduledTime: "10:00",
	})
	if err != nil {
		t.Fatalf("UpdateSchedule failed: %v", err)
	}
	if updated.ID != schedule.ID {
		t.Errorf("Expected id preserved, got %s", updated.ID)
	}
	if updated.Title != "Rescheduled" || updated.Status != models.ScheduleStatusDone {
		t.Errorf("Update not applied: %+v", updated)
	}
}
