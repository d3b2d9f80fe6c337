package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowStatus is the tracking state of a work item.
type WorkflowStatus string

const (
	WorkflowStatusInProgress     WorkflowStatus = "In Progress"
	WorkflowStatusAwaitingReview WorkflowStatus = "Awaiting Review"
	WorkflowStatusDone           WorkflowStatus = "Done"
)

func (s WorkflowStatus) Valid() bool {
	switch s {
	case WorkflowStatusInProgress, WorkflowStatusAwaitingReview, WorkflowStatusDone:
		return true
	}
	return false
}

func (s WorkflowStatus) BadgeVariant() string {
	switch s {
	case WorkflowStatusInProgress:
		return "blue"
	case WorkflowStatusAwaitingReview:
		return "yellow"
	case WorkflowStatusDone:
		return "green"
	}
	return "gray"
}

// WorkflowPriority orders work items for triage.
type WorkflowPriority string

const (
	WorkflowPriorityLow    WorkflowPriority = "Low"
	WorkflowPriorityMedium WorkflowPriority = "Medium"
	WorkflowPriorityHigh   WorkflowPriority = "High"
)

func (p WorkflowPriority) Valid() bool {
	switch p {
	case WorkflowPriorityLow, WorkflowPriorityMedium, WorkflowPriorityHigh:
		return true
	}
	return false
}

func (p WorkflowPriority) BadgeVariant() string {
	switch p {
	case WorkflowPriorityHigh:
		return "red"
	case WorkflowPriorityMedium:
		return "yellow"
	case WorkflowPriorityLow:
		return "outline"
	}
	return "gray"
}

// Workflow is a tracked unit of engagement work for a client.
type Workflow struct {
	ID          string           `gorm:"primaryKey;size:36" json:"id"`
	ClientID    string           `gorm:"size:36;not null;index" json:"client_id"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"size:1024" json:"description"`
	Category    string           `gorm:"size:64;not null" json:"category"`
	Status      WorkflowStatus   `gorm:"size:24;not null;default:'In Progress'" json:"status"`
	Priority    WorkflowPriority `gorm:"size:16;not null;default:Medium" json:"priority"`
	Assignee    string           `gorm:"size:255" json:"assignee"`
	DueDate     *time.Time       `json:"due_date"`
	Progress    int              `json:"progress"`
	CreatedBy   string           `gorm:"size:255" json:"created_by"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (w *Workflow) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Workflow
func (Workflow) TableName() string {
	return "workflows"
}
