package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SPTRecordStatus tracks a filed SPT (tax return) record.
type SPTRecordStatus string

const (
	SPTRecordStatusDraft     SPTRecordStatus = "Draft"
	SPTRecordStatusSubmitted SPTRecordStatus = "Submitted"
	SPTRecordStatusApproved  SPTRecordStatus = "Approved"
)

func (s SPTRecordStatus) Valid() bool {
	switch s {
	case SPTRecordStatusDraft, SPTRecordStatusSubmitted, SPTRecordStatusApproved:
		return true
	}
	return false
}

// SPTRecord is a filed tax-return entry, the worksheet-level ledger of
// submissions per client and period.
type SPTRecord struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	ClientID  string          `gorm:"size:36;not null;index" json:"client_id"`
	Type      string          `gorm:"size:64;not null" json:"type"`
	Period    string          `gorm:"size:64;not null" json:"period"`
	Amount    *float64        `json:"amount"`
	Status    SPTRecordStatus `gorm:"size:16;not null;default:Draft" json:"status"`
	CreatedBy string          `gorm:"size:255" json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (r *SPTRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for SPTRecord
func (SPTRecord) TableName() string {
	return "spt_records"
}

// SPTFormStatus is the preparation state of an SPT form in progress.
type SPTFormStatus string

const (
	SPTFormStatusInProgress SPTFormStatus = "In Progress"
	SPTFormStatusReview     SPTFormStatus = "Review"
	SPTFormStatusDone       SPTFormStatus = "Done"
)

func (s SPTFormStatus) Valid() bool {
	switch s {
	case SPTFormStatusInProgress, SPTFormStatusReview, SPTFormStatusDone:
		return true
	}
	return false
}

func (s SPTFormStatus) BadgeVariant() string {
	switch s {
	case SPTFormStatusInProgress:
		return "blue"
	case SPTFormStatusReview:
		return "yellow"
	case SPTFormStatusDone:
		return "green"
	}
	return "gray"
}

// SPTForm is an SPT under preparation. Progress is a free-entry integer
// percentage, not derived from anything.
type SPTForm struct {
	ID        string        `gorm:"primaryKey;size:36" json:"id"`
	ClientID  string        `gorm:"size:36;not null;index" json:"client_id"`
	Title     string        `gorm:"size:255;not null" json:"title"`
	Type      string        `gorm:"size:64;not null" json:"type"`
	Period    string        `gorm:"size:64;not null" json:"period"`
	Status    SPTFormStatus `gorm:"size:16;not null;default:'In Progress'" json:"status"`
	Amount    *float64      `json:"amount"`
	DueDate   *time.Time    `json:"due_date"`
	Progress  int           `json:"progress"`
	CreatedBy string        `gorm:"size:255" json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (f *SPTForm) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for SPTForm
func (SPTForm) TableName() string {
	return "spt_forms"
}
