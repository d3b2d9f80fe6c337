// workflows.go
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

// WorkflowInput is the mutation-dialog payload for a work item.
type WorkflowInput struct {
	ClientID    string                  `json:"client_id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Category    string                  `json:"category"`
	Status      models.WorkflowStatus   `json:"status"`
	Priority    models.WorkflowPriority `json:"priority"`
	Assignee    string                  `json:"assignee"`
	DueDate     string                  `json:"due_date"`
	Progress    types.FlexInt           `json:"progress"`
	CreatedBy   string                  `json:"created_by"`
}

func (in *WorkflowInput) validate(db *gorm.DB) error {
	if in.Title == "" || in.Category == "" {
		return types.NewError(fiber.StatusBadRequest, "title and category are required", "workflows.validation.input")
	}
	if in.Status == "" {
		in.Status = models.WorkflowStatusInProgress
	}
	if !in.Status.Valid() {
		return types.NewError(fiber.StatusBadRequest, "unknown workflow status", "workflows.validation.status")
	}
	if in.Priority == "" {
		in.Priority = models.WorkflowPriorityMedium
	}
	if !in.Priority.Valid() {
		return types.NewError(fiber.StatusBadRequest, "unknown workflow priority", "workflows.validation.priority")
	}
	return requireClient(db, in.ClientID, "workflows.validation.client")
}

// WorkflowRow is a work-item list entry with the joined client name.
type WorkflowRow struct {
	models.Workflow
	ClientName string `json:"client_name"`
}

// WorkflowStats are the summary-card aggregates of the workflows page.
type WorkflowStats struct {
	Total          int     `json:"total"`
	InProgress     int     `json:"in_progress"`
	AwaitingReview int     `json:"awaiting_review"`
	Done           int     `json:"done"`
	DonePercent    float64 `json:"done_percent"`
}

func fetchWorkflows(db *gorm.DB) ([]WorkflowRow, error) {
	var workflows []models.Workflow
	if err := db.Order("created_at desc").Find(&workflows).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load workflows", "workflows.fetch")
	}

	names, err := clientNames(db)
	if err != nil {
		return nil, err
	}

	rows := make([]WorkflowRow, 0, len(workflows))
	for _, w := range workflows {
		rows = append(rows, WorkflowRow{Workflow: w, ClientName: names[w.ClientID]})
	}
	return rows, nil
}

// ListWorkflows filters by free text over title, client name and assignee,
// narrowed by category, status and priority equality filters.
func ListWorkflows(db *gorm.DB, q, category, status, priority string) ([]WorkflowRow, error) {
	rows, err := fetchWorkflows(db)
	if err != nil {
		return nil, err
	}

	return listfilter.Apply(rows,
		func(r WorkflowRow) bool {
			return listfilter.TextMatch(q, r.Title, r.ClientName, r.Assignee)
		},
		func(r WorkflowRow) bool {
			return listfilter.Equals(category, r.Category)
		},
		func(r WorkflowRow) bool {
			return listfilter.Equals(status, string(r.Status))
		},
		func(r WorkflowRow) bool {
			return listfilter.Equals(priority, string(r.Priority))
		},
	), nil
}

// GetWorkflowStats computes the workflows page summary cards.
func GetWorkflowStats(db *gorm.DB) (WorkflowStats, error) {
	rows, err := fetchWorkflows(db)
	if err != nil {
		return WorkflowStats{}, err
	}

	done := listfilter.CountWhere(rows, func(r WorkflowRow) bool {
		return r.Status == models.WorkflowStatusDone
	})

	return WorkflowStats{
		Total: len(rows),
		InProgress: listfilter.CountWhere(rows, func(r WorkflowRow) bool {
			return r.Status == models.WorkflowStatusInProgress
		}),
		AwaitingReview: listfilter.CountWhere(rows, func(r WorkflowRow) bool {
			return r.Status == models.WorkflowStatusAwaitingReview
		}),
		Done:        done,
		DonePercent: listfilter.Percent(done, len(rows)),
	}, nil
}

// CreateWorkflow inserts one work item.
func CreateWorkflow(db *gorm.DB, in WorkflowInput) (*models.Workflow, error) {
	if err := in.validate(db); err != nil {
		return nil, err
	}
	due, err := parseDate(in.DueDate, "workflows.validation.date")
	if err != nil {
		return nil, err
	}

	workflow := models.Workflow{
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
		Priority:    in.Priority,
		Assignee:    in.Assignee,
		DueDate:     due,
		Progress:    clampProgress(in.Progress.Int()),
		CreatedBy:   in.CreatedBy,
	}
	if err := db.Create(&workflow).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to create workflow", "workflows.create")
	}
	return &workflow, nil
}

// UpdateWorkflow replaces the form-backed fields of an existing work item.
func UpdateWorkflow(db *gorm.DB, id string, in WorkflowInput) (*models.Workflow, error) {
	if err := in.validate(db); err != nil {
		return nil, err
	}
	due, err := parseDate(in.DueDate, "workflows.validation.date")
	if err != nil {
		return nil, err
	}

	var workflow models.Workflow
	if err := db.First(&workflow, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewError(fiber.StatusNotFound, "workflow not found", "workflows.notfound")
		}
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load workflow", "workflows.fetch")
	}

	workflow.ClientID = in.ClientID
	workflow.Title = in.Title
	workflow.Description = in.Description
	workflow.Category = in.Category
	workflow.Status = in.Status
	workflow.Priority = in.Priority
	workflow.Assignee = in.Assignee
	workflow.DueDate = due
	workflow.Progress = clampProgress(in.Progress.Int())
	workflow.CreatedBy = in.CreatedBy

	if err := db.Save(&workflow).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to update workflow", "workflows.update")
	}
	return &workflow, nil
}
