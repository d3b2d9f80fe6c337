// consultations.go
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

// ConsultationInput is the mutation-dialog payload for a consulting session.
type ConsultationInput struct {
	ClientID         string                    `json:"client_id"`
	Topic            string                    `json:"topic"`
	Description      string                    `json:"description"`
	ConsultationDate string                    `json:"consultation_date"`
	ConsultationTime string                    `json:"consultation_time"`
	Duration         types.FlexInt             `json:"duration"`
	Type             models.ConsultationType   `json:"type"`
	Status           models.ConsultationStatus `json:"status"`
	Consultant       string                    `json:"consultant"`
}

func (in *ConsultationInput) validate(db *gorm.DB) (*time.Time, error) {
	if in.Topic == "" {
		return nil, types.NewError(fiber.StatusBadRequest, "topic is required", "consultations.validation.input")
	}
	if in.Type == "" {
		in.Type = models.ConsultationTypeMeeting
	}
	if !in.Type.Valid() {
		return nil, types.NewError(fiber.StatusBadRequest, "unknown consultation type", "consultations.validation.type")
	}
	if in.Status == "" {
		in.Status = models.ConsultationStatusScheduled
	}
	if !in.Status.Valid() {
		return nil, types.NewError(fiber.StatusBadRequest, "unknown consultation status", "consultations.validation.status")
	}
	if in.Duration == 0 {
		in.Duration = 60
	}
	if err := requireClient(db, in.ClientID, "consultations.validation.client"); err != nil {
		return nil, err
	}
	if in.ConsultationDate == "" {
		return nil, nil
	}
	when, err := combineDateTime(in.ConsultationDate, in.ConsultationTime, "consultations.validation.date")
	if err != nil {
		return nil, err
	}
	return &when, nil
}

// ConsultationRow is a consultation list entry with the joined client name.
type ConsultationRow struct {
	models.Consultation
	ClientName string `json:"client_name"`
}

// ConsultationStats are the summary-card aggregates of the consultations
// page.
type ConsultationStats struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	ThisMonth int `json:"this_month"`
}

func fetchConsultations(db *gorm.DB) ([]ConsultationRow, error) {
	var consultations []models.Consultation
	if err := db.Order("created_at desc").Find(&consultations).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load consultations", "consultations.fetch")
	}

	names, err := clientNames(db)
	if err != nil {
		return nil, err
	}

	rows := make([]ConsultationRow, 0, len(consultations))
	for _, c := range consultations {
		rows = append(rows, ConsultationRow{Consultation: c, ClientName: names[c.ClientID]})
	}
	return rows, nil
}

// ListConsultations filters by free text over topic, client name and
// consultant, and by type/status equality.
func ListConsultations(db *gorm.DB, q, consultationType, status string) ([]ConsultationRow, error) {
	rows, err := fetchConsultations(db)
	if err != nil {
		return nil, err
	}

	return listfilter.Apply(rows,
		func(r ConsultationRow) bool {
			return listfilter.TextMatch(q, r.Topic, r.ClientName, r.Consultant)
		},
		func(r ConsultationRow) bool {
			return listfilter.Equals(consultationType, string(r.Type))
		},
		func(r ConsultationRow) bool {
			return listfilter.Equals(status, string(r.Status))
		},
	), nil
}

// GetConsultationStats computes the consultations page summary cards.
func GetConsultationStats(db *gorm.DB) (ConsultationStats, error) {
	rows, err := fetchConsultations(db)
	if err != nil {
		return ConsultationStats{}, err
	}

	now := nowUTC()

	return ConsultationStats{
		Total: len(rows),
		Scheduled: listfilter.CountWhere(rows, func(r ConsultationRow) bool {
			return r.Status == models.ConsultationStatusScheduled
		}),
		Completed: listfilter.CountWhere(rows, func(r ConsultationRow) bool {
			return r.Status == models.ConsultationStatusCompleted
		}),
		ThisMonth: listfilter.CountWhere(rows, func(r ConsultationRow) bool {
			if r.ConsultationDate == nil {
				return false
			}
			d := r.ConsultationDate.UTC()
			return d.Year() == now.Year() && d.Month() == now.Month()
		}),
	}, nil
}

// CreateConsultation inserts one consultation record.
func CreateConsultation(db *gorm.DB, in ConsultationInput) (*models.Consultation, error) {
	when, err := in.validate(db)
	if err != nil {
		return nil, err
	}

	consultation := models.Consultation{
		ClientID:         in.ClientID,
		Topic:            in.Topic,
		Description:      in.Description,
		ConsultationDate: when,
		Duration:         in.Duration.Int(),
		Type:             in.Type,
		Status:           in.Status,
		Consultant:       in.Consultant,
	}
	if err := db.Create(&consultation).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to create consultation", "consultations.create")
	}
	return &consultation, nil
}

// UpdateConsultation replaces the form-backed fields of an existing record.
func UpdateConsultation(db *gorm.DB, id string, in ConsultationInput) (*models.Consultation, error) {
	when, err := in.validate(db)
	if err != nil {
		return nil, err
	}

	var consultation models.Consultation
	if err := db.First(&consultation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewError(fiber.StatusNotFound, "consultation not found", "consultations.notfound")
		}
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load consultation", "consultations.fetch")
	}

	consultation.ClientID = in.ClientID
	consultation.Topic = in.Topic
	consultation.Description = in.Description
	consultation.ConsultationDate = when
	consultation.Duration = in.Duration.Int()
	consultation.Type = in.Type
	consultation.Status = in.Status
	consultation.Consultant = in.Consultant

	if err := db.Save(&consultation).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to update consultation", "consultations.update")
	}
	return &consultation, nil
}
