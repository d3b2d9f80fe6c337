// schedules.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/listfilter"
	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/types"
	"gorm.io/gorm"
)

// ScheduleInput is the mutation-dialog payload for a calendar entry. Date
// and time arrive as the two separate form fields the dialog renders and
// are combined into one timestamp on submit.
type ScheduleInput struct {
	ClientID        string                `json:"client_id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Type            string                `json:"type"`
	Status          models.ScheduleStatus `json:"status"`
	ScheduledDate   string                `json:"scheduled_date"`
	ScheduledTime   string                `json:"scheduled_time"`
	Duration        types.FlexInt         `json:"duration"`
	Location        string                `json:"location"`
	ReminderMinutes types.FlexInt         `json:"reminder_minutes"`
	CreatedBy       string                `json:"created_by"`
}

func (in *ScheduleInput) validate(db *gorm.DB) (time.Time, error) {
	if in.Title == "" || in.Type == "" {
		return time.Time{}, types.NewError(fiber.StatusBadRequest, "title and type are required", "schedules.validation.input")
	}
	if in.Status == "" {
		in.Status = models.ScheduleStatusPending
	}
	if !in.Status.Valid() {
		return time.Time{}, types.NewError(fiber.StatusBadRequest, "unknown schedule status", "schedules.validation.status")
	}
	if in.Duration == 0 {
		in.Duration = 60
	}
	if in.ReminderMinutes == 0 {
		in.ReminderMinutes = 15
	}
	if err := requireClient(db, in.ClientID, "schedules.validation.client"); err != nil {
		return time.Time{}, err
	}
	return combineDateTime(in.ScheduledDate, in.ScheduledTime, "schedules.validation.date")
}

// ScheduleRow is a schedule list entry with the joined client name.
type ScheduleRow struct {
	models.Schedule
	ClientName string `json:"client_name"`
}

// ScheduleStats are the summary-card aggregates of the calendar page.
type ScheduleStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Done      int `json:"done"`
	Cancelled int `json:"cancelled"`
	ThisWeek  int `json:"this_week"`
}

// fetchSchedules is the remote fetcher for the schedules mirror: one read
// ordered by scheduled time ascending, client names joined in.
func fetchSchedules(db *gorm.DB) ([]ScheduleRow, error) {
	var schedules []models.Schedule
	if err := db.Order("scheduled_date asc").Find(&schedules).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load schedules", "schedules.fetch")
	}

	names, err := clientNames(db)
	if err != nil {
		return nil, err
	}

	rows := make([]ScheduleRow, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, ScheduleRow{Schedule: s, ClientName: names[s.ClientID]})
	}
	return rows, nil
}

// ListSchedules filters the schedules mirror by an optional calendar day,
// free text over title and client name, and type/status equality. The day
// filter runs first and the general reducers narrow its result, matching
// the calendar page composition.
func ListSchedules(db *gorm.DB, day *time.Time, q, scheduleType, status string) ([]ScheduleRow, error) {
	rows, err := fetchSchedules(db)
	if err != nil {
		return nil, err
	}

	preds := []func(ScheduleRow) bool{
		func(r ScheduleRow) bool {
			return listfilter.TextMatch(q, r.Title, r.ClientName)
		},
		func(r ScheduleRow) bool {
			return listfilter.Equals(scheduleType, r.Type)
		},
		func(r ScheduleRow) bool {
			return listfilter.Equals(status, string(r.Status))
		},
	}
	if day != nil {
		preds = append([]func(ScheduleRow) bool{func(r ScheduleRow) bool {
			return listfilter.SameDay(r.ScheduledDate, *day)
		}}, preds...)
	}

	return listfilter.Apply(rows, preds...), nil
}

// GetScheduleStats computes the calendar page summary cards.
func GetScheduleStats(db *gorm.DB) (ScheduleStats, error) {
	rows, err := fetchSchedules(db)
	if err != nil {
		return ScheduleStats{}, err
	}

	now := nowUTC()
	year, week := now.ISOWeek()

	return ScheduleStats{
		Total: len(rows),
		Pending: listfilter.CountWhere(rows, func(r ScheduleRow) bool {
			return r.Status == models.ScheduleStatusPending
		}),
		Done: listfilter.CountWhere(rows, func(r ScheduleRow) bool {
			return r.Status == models.ScheduleStatusDone
		}),
		Cancelled: listfilter.CountWhere(rows, func(r ScheduleRow) bool {
			return r.Status == models.ScheduleStatusCancelled
		}),
		ThisWeek: listfilter.CountWhere(rows, func(r ScheduleRow) bool {
			y, w := r.ScheduledDate.UTC().ISOWeek()
			return y == year && w == week
		}),
	}, nil
}

// CreateSchedule inserts one calendar entry.
func CreateSchedule(db *gorm.DB, in ScheduleInput) (*models.Schedule, error) {
	when, err := in.validate(db)
	if err != nil {
		return nil, err
	}

	schedule := models.Schedule{
		ClientID:        in.ClientID,
		Title:           in.Title,
		Description:     in.Description,
		Type:            in.Type,
		Status:          in.Status,
		ScheduledDate:   when,
		Duration:        in.Duration.Int(),
		Location:        in.Location,
		ReminderMinutes: in.ReminderMinutes.Int(),
		CreatedBy:       in.CreatedBy,
	}
	if err := db.Create(&schedule).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to create schedule", "schedules.create")
	}
	return &schedule, nil
}

// UpdateSchedule replaces the form-backed fields of an existing entry.
func UpdateSchedule(db *gorm.DB, id string, in ScheduleInput) (*models.Schedule, error) {
	when, err := in.validate(db)
	if err != nil {
		return nil, err
	}

	var schedule models.Schedule
	if err := db.First(&schedule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewError(fiber.StatusNotFound, "schedule not found", "schedules.notfound")
		}
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load schedule", "schedules.fetch")
	}

	schedule.ClientID = in.ClientID
	schedule.Title = in.Title
	schedule.Description = in.Description
	schedule.Type = in.Type
	schedule.Status = in.Status
	schedule.ScheduledDate = when
	schedule.Duration = in.Duration.Int()
	schedule.Location = in.Location
	schedule.ReminderMinutes = in.ReminderMinutes.Int()

	if err := db.Save(&schedule).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to update schedule", "schedules.update")
	}
	return &schedule, nil
}
