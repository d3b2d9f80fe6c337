package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleStatus is the lifecycle state of a calendar entry.
type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "Pending"
	ScheduleStatusDone      ScheduleStatus = "Done"
	ScheduleStatusCancelled ScheduleStatus = "Cancelled"
)

func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleStatusPending, ScheduleStatusDone, ScheduleStatusCancelled:
		return true
	}
	return false
}

func (s ScheduleStatus) BadgeVariant() string {
	switch s {
	case ScheduleStatusPending:
		return "yellow"
	case ScheduleStatusDone:
		return "green"
	case ScheduleStatusCancelled:
		return "red"
	}
	return "gray"
}

// Schedule is a calendar entry for a client appointment or deadline.
// ScheduledDate is stored in UTC; calendar-day matching also happens on
// the UTC day so the practice and the service agree on day boundaries.
type Schedule struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	ClientID        string         `gorm:"size:36;not null;index" json:"client_id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     string         `gorm:"size:1024" json:"description"`
	Type            string         `gorm:"size:64;not null" json:"type"`
	Status          ScheduleStatus `gorm:"size:16;not null;default:Pending" json:"status"`
	ScheduledDate   time.Time      `gorm:"not null;index" json:"scheduled_date"`
	Duration        int            `json:"duration"`
	Location        string         `gorm:"size:255" json:"location"`
	ReminderMinutes int            `gorm:"default:15" json:"reminder_minutes"`
	CreatedBy       string         `gorm:"size:255" json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Schedule
func (Schedule) TableName() string {
	return "schedules"
}
