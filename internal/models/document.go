package models

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentStatus is the review state of an uploaded document.
type DocumentStatus string

const (
	DocumentStatusFinal  DocumentStatus = "Final"
	DocumentStatusDraft  DocumentStatus = "Draft"
	DocumentStatusReview DocumentStatus = "Review"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusFinal, DocumentStatusDraft, DocumentStatusReview:
		return true
	}
	return false
}

func (s DocumentStatus) BadgeVariant() string {
	switch s {
	case DocumentStatusFinal:
		return "green"
	case DocumentStatusDraft:
		return "gray"
	case DocumentStatusReview:
		return "yellow"
	}
	return "gray"
}

// Document is the metadata record for a stored binary. The binary itself
// lives in the object store under FilePath.
type Document struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	Name       string         `gorm:"size:255;not null;index" json:"name"`
	ClientID   string         `gorm:"size:36;not null;index" json:"client_id"`
	Type       string         `gorm:"size:64;not null" json:"type"`
	Category   string         `gorm:"size:64;not null" json:"category"`
	FilePath   string         `gorm:"size:512;not null" json:"file_path"`
	FileSize   int64          `json:"file_size"`
	Status     DocumentStatus `gorm:"size:16;not null;default:Final" json:"status"`
	UploadedBy string         `gorm:"size:255" json:"uploaded_by"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}

// FileKind classifies the document by file extension for display purposes.
func (d Document) FileKind() string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(d.Name), ".")) {
	case "pdf":
		return "pdf"
	case "xls", "xlsx", "csv":
		return "excel"
	case "jpg", "jpeg", "png", "gif":
		return "image"
	case "doc", "docx":
		return "word"
	}
	return "other"
}
