// spt.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/listfilter"
	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/types"
	"gorm.io/gorm"
)

// SPTRecordInput is the mutation-dialog payload for a filed SPT entry.
// Amount arrives as free text and persists as null when left empty.
type SPTRecordInput struct {
	ClientID  string                 `json:"client_id"`
	Type      string                 `json:"type"`
	Period    string                 `json:"period"`
	Amount    types.FlexAmount       `json:"amount"`
	Status    models.SPTRecordStatus `json:"status"`
	CreatedBy string                 `json:"created_by"`
}

func (in *SPTRecordInput) validate(db *gorm.DB) error {
	if in.Type == "" || in.Period == "" {
		return types.NewError(fiber.StatusBadRequest, "type and period are required", "spt.records.validation.input")
	}
	if in.Status == "" {
		in.Status = models.SPTRecordStatusDraft
	}
	if !in.Status.Valid() {
		return types.NewError(fiber.StatusBadRequest, "unknown record status", "spt.records.validation.status")
	}
	return requireClient(db, in.ClientID, "spt.records.validation.client")
}

// SPTFormInput is the mutation-dialog payload for an SPT under preparation.
type SPTFormInput struct {
	ClientID  string               `json:"client_id"`
	Title     string               `json:"title"`
	Type      string               `json:"type"`
	Period    string               `json:"period"`
	Status    models.SPTFormStatus `json:"status"`
	Amount    types.FlexAmount     `json:"amount"`
	DueDate   string               `json:"due_date"`
	Progress  types.FlexInt        `json:"progress"`
	CreatedBy string               `json:"created_by"`
}

func (in *SPTFormInput) validate(db *gorm.DB) error {
	if in.Title == "" || in.Type == "" || in.Period == "" {
		return types.NewError(fiber.StatusBadRequest, "title, type and period are required", "spt.forms.validation.input")
	}
	if in.Status == "" {
		in.Status = models.SPTFormStatusInProgress
	}
	if !in.Status.Valid() {
		return types.NewError(fiber.StatusBadRequest, "unknown form status", "spt.forms.validation.status")
	}
	return requireClient(db, in.ClientID, "spt.forms.validation.client")
}

// SPTRecordRow is a filed-entry list row with the joined client name.
type SPTRecordRow struct {
	models.SPTRecord
	ClientName string `json:"client_name"`
}

// SPTFormRow is an in-preparation list row with the joined client name.
type SPTFormRow struct {
	models.SPTForm
	ClientName string `json:"client_name"`
}

// SPTStats are the summary-card aggregates of the SPT page, spanning both
// the filed ledger and the forms in preparation.
type SPTStats struct {
	TotalRecords int     `json:"total_records"`
	Submitted    int     `json:"submitted"`
	Approved     int     `json:"approved"`
	TotalAmount  float64 `json:"total_amount"`
	ActiveForms  int     `json:"active_forms"`
	DoneForms    int     `json:"done_forms"`
}

func fetchSPTRecords(db *gorm.DB) ([]SPTRecordRow, error) {
	var records []models.SPTRecord
	if err := db.Order("created_at desc").Find(&records).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load SPT records", "spt.records.fetch")
	}

	names, err := clientNames(db)
	if err != nil {
		return nil, err
	}

	rows := make([]SPTRecordRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, SPTRecordRow{SPTRecord: r, ClientName: names[r.ClientID]})
	}
	return rows, nil
}

func fetchSPTForms(db *gorm.DB) ([]SPTFormRow, error) {
	var forms []models.SPTForm
	if err := db.Order("created_at desc").Find(&forms).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load SPT forms", "spt.forms.fetch")
	}

	names, err := clientNames(db)
	if err != nil {
		return nil, err
	}

	rows := make([]SPTFormRow, 0, len(forms))
	for _, f := range forms {
		rows = append(rows, SPTFormRow{SPTForm: f, ClientName: names[f.ClientID]})
	}
	return rows, nil
}

// ListSPTRecords filters the filed ledger by free text over type, period
// and client name, narrowed by a status equality filter.
func ListSPTRecords(db *gorm.DB, q, status string) ([]SPTRecordRow, error) {
	rows, err := fetchSPTRecords(db)
	if err != nil {
		return nil, err
	}

	return listfilter.Apply(rows,
		func(r SPTRecordRow) bool {
			return listfilter.TextMatch(q, r.Type, r.Period, r.ClientName)
		},
		func(r SPTRecordRow) bool {
			return listfilter.Equals(status, string(r.Status))
		},
	), nil
}

// ListSPTForms filters the in-preparation list by free text over title,
// type, period and client name, narrowed by a status equality filter.
func ListSPTForms(db *gorm.DB, q, status string) ([]SPTFormRow, error) {
	rows, err := fetchSPTForms(db)
	if err != nil {
		return nil, err
	}

	return listfilter.Apply(rows,
		func(r SPTFormRow) bool {
			return listfilter.TextMatch(q, r.Title, r.Type, r.Period, r.ClientName)
		},
		func(r SPTFormRow) bool {
			return listfilter.Equals(status, string(r.Status))
		},
	), nil
}

// GetSPTStats computes the SPT page summary cards. The amount total sums
// filed entries only; null amounts contribute nothing.
func GetSPTStats(db *gorm.DB) (SPTStats, error) {
	records, err := fetchSPTRecords(db)
	if err != nil {
		return SPTStats{}, err
	}
	forms, err := fetchSPTForms(db)
	if err != nil {
		return SPTStats{}, err
	}

	return SPTStats{
		TotalRecords: len(records),
		Submitted: listfilter.CountWhere(records, func(r SPTRecordRow) bool {
			return r.Status == models.SPTRecordStatusSubmitted
		}),
		Approved: listfilter.CountWhere(records, func(r SPTRecordRow) bool {
			return r.Status == models.SPTRecordStatusApproved
		}),
		TotalAmount: listfilter.SumWhere(records, nil, func(r SPTRecordRow) float64 {
			if r.Amount == nil {
				return 0
			}
			return *r.Amount
		}),
		ActiveForms: listfilter.CountWhere(forms, func(f SPTFormRow) bool {
			return f.Status != models.SPTFormStatusDone
		}),
		DoneForms: listfilter.CountWhere(forms, func(f SPTFormRow) bool {
			return f.Status == models.SPTFormStatusDone
		}),
	}, nil
}

// CreateSPTRecord inserts one filed-ledger entry.
func CreateSPTRecord(db *gorm.DB, in SPTRecordInput) (*models.SPTRecord, error) {
	if err := in.validate(db); err != nil {
		return nil, err
	}

	record := models.SPTRecord{
		ClientID:  in.ClientID,
		Type:      in.Type,
		Period:    in.Period,
		Amount:    in.Amount.Ptr(),
		Status:    in.Status,
		CreatedBy: in.CreatedBy,
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to create SPT record", "spt.records.create")
	}
	return &record, nil
}

// UpdateSPTRecord replaces the form-backed fields of a filed entry.
func UpdateSPTRecord(db *gorm.DB, id string, in SPTRecordInput) (*models.SPTRecord, error) {
	if err := in.validate(db); err != nil {
		return nil, err
	}

	var record models.SPTRecord
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewError(fiber.StatusNotFound, "SPT record not found", "spt.records.notfound")
		}
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load SPT record", "spt.records.fetch")
	}

	record.ClientID = in.ClientID
	record.Type = in.Type
	record.Period = in.Period
	record.Amount = in.Amount.Ptr()
	record.Status = in.Status
	record.CreatedBy = in.CreatedBy

	if err := db.Save(&record).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to update SPT record", "spt.records.update")
	}
	return &record, nil
}

// CreateSPTForm inserts one in-preparation form.
func CreateSPTForm(db *gorm.DB, in SPTFormInput) (*models.SPTForm, error) {
	if err := in.validate(db); err != nil {
		return nil, err
	}
	due, err := parseDate(in.DueDate, "spt.forms.validation.date")
	if err != nil {
		return nil, err
	}

	form := models.SPTForm{
		ClientID:  in.ClientID,
		Title:     in.Title,
		Type:      in.Type,
		Period:    in.Period,
		Status:    in.Status,
		Amount:    in.Amount.Ptr(),
		DueDate:   due,
		Progress:  clampProgress(in.Progress.Int()),
		CreatedBy: in.CreatedBy,
	}
	if err := db.Create(&form).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to create SPT form", "spt.forms.create")
	}
	return &form, nil
}

// UpdateSPTForm replaces the form-backed fields of an in-preparation form.
func UpdateSPTForm(db *gorm.DB, id string, in SPTFormInput) (*models.SPTForm, error) {
	if err := in.validate(db); err != nil {
		return nil, err
	}
	due, err := parseDate(in.DueDate, "spt.forms.validation.date")
	if err != nil {
		return nil, err
	}

	var form models.SPTForm
	if err := db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewError(fiber.StatusNotFound, "SPT form not found", "spt.forms.notfound")
		}
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load SPT form", "spt.forms.fetch")
	}

	form.ClientID = in.ClientID
	form.Title = in.Title
	form.Type = in.Type
	form.Period = in.Period
	form.Status = in.Status
	form.Amount = in.Amount.Ptr()
	form.DueDate = due
	form.Progress = clampProgress(in.Progress.Int())
	form.CreatedBy = in.CreatedBy

	if err := db.Save(&form).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to update SPT form", "spt.forms.update")
	}
	return &form, nil
}
