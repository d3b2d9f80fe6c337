package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsultationType is how the consultation is held.
type ConsultationType string

const (
	ConsultationTypeMeeting   ConsultationType = "Meeting"
	ConsultationTypeVideoCall ConsultationType = "Video Call"
	ConsultationTypePhoneCall ConsultationType = "Phone Call"
)

func (t ConsultationType) Valid() bool {
	switch t {
	case ConsultationTypeMeeting, ConsultationTypeVideoCall, ConsultationTypePhoneCall:
		return true
	}
	return false
}

// ConsultationStatus is the lifecycle state of a consultation.
type ConsultationStatus string

const (
	ConsultationStatusScheduled ConsultationStatus = "Scheduled"
	ConsultationStatusCompleted ConsultationStatus = "Completed"
	ConsultationStatusCancelled ConsultationStatus = "Cancelled"
)

func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationStatusScheduled, ConsultationStatusCompleted, ConsultationStatusCancelled:
		return true
	}
	return false
}

func (s ConsultationStatus) BadgeVariant() string {
	switch s {
	case ConsultationStatusScheduled:
		return "blue"
	case ConsultationStatusCompleted:
		return "green"
	case ConsultationStatusCancelled:
		return "red"
	}
	return "gray"
}

// Consultation is a consulting session booked for a client.
type Consultation struct {
	ID               string             `gorm:"primaryKey;size:36" json:"id"`
	ClientID         string             `gorm:"size:36;not null;index" json:"client_id"`
	Topic            string             `gorm:"size:255;not null" json:"topic"`
	Description      string             `gorm:"size:1024" json:"description"`
	ConsultationDate *time.Time         `gorm:"index" json:"consultation_date"`
	Duration         int                `json:"duration"`
	Type             ConsultationType   `gorm:"size:32" json:"type"`
	Status           ConsultationStatus `gorm:"size:16;not null;default:Scheduled" json:"status"`
	Consultant       string             `gorm:"size:255" json:"consultant"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func (c *Consultation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Consultation
func (Consultation) TableName() string {
	return "consultations"
}
