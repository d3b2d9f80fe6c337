// documents.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/listfilter"
	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/storage"
	"github.com/pajakdesk/pajakdesk/internal/types"
	"gorm.io/gorm"
)

// DocumentInput is the mutation-dialog payload for document metadata. The
// binary travels separately as a multipart part.
type DocumentInput struct {
	Name       string                `json:"name"`
	ClientID   string                `json:"client_id"`
	Type       string                `json:"type"`
	Category   string                `json:"category"`
	Status     models.DocumentStatus `json:"status"`
	UploadedBy string                `json:"uploaded_by"`
}

func (in *DocumentInput) validate(db *gorm.DB) error {
	if in.Name == "" || in.Type == "" || in.Category == "" {
		return types.NewError(fiber.StatusBadRequest, "name, type and category are required", "documents.validation.input")
	}
	if in.Status == "" {
		in.Status = models.DocumentStatusFinal
	}
	if !in.Status.Valid() {
		return types.NewError(fiber.StatusBadRequest, "unknown document status", "documents.validation.status")
	}
	return requireClient(db, in.ClientID, "documents.validation.client")
}

// DocumentRow is a document list entry with the joined client name. A
// document whose client reference no longer resolves renders with an empty
// client name instead of failing.
type DocumentRow struct {
	models.Document
	ClientName string `json:"client_name"`
	FileKind   string `json:"file_kind"`
}

// DocumentStats are the summary-card aggregates of the documents page.
type DocumentStats struct {
	Total        int   `json:"total"`
	InReview     int   `json:"in_review"`
	Drafts       int   `json:"drafts"`
	StorageBytes int64 `json:"storage_bytes"`
	UploadsToday int   `json:"uploads_today"`
}

// fetchDocuments is the remote fetcher for the documents mirror: one read
// ordered by creation time descending, with client names joined in.
func fetchDocuments(db *gorm.DB) ([]DocumentRow, error) {
	var docs []models.Document
	if err := db.Order("created_at desc").Find(&docs).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load documents", "documents.fetch")
	}

	names, err := clientNames(db)
	if err != nil {
		return nil, err
	}

	rows := make([]DocumentRow, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, DocumentRow{
			Document:   d,
			ClientName: names[d.ClientID],
			FileKind:   d.FileKind(),
		})
	}
	return rows, nil
}

// ListDocuments filters the documents mirror by free text over document and
// client name, and by category and status equality.
func ListDocuments(db *gorm.DB, q, category, status string) ([]DocumentRow, error) {
	rows, err := fetchDocuments(db)
	if err != nil {
		return nil, err
	}

	return listfilter.Apply(rows,
		func(r DocumentRow) bool {
			return listfilter.TextMatch(q, r.Name, r.ClientName)
		},
		func(r DocumentRow) bool {
			return listfilter.Equals(category, r.Category)
		},
		func(r DocumentRow) bool {
			return listfilter.Equals(status, string(r.Status))
		},
	), nil
}

// GetDocumentStats computes the documents page summary cards.
func GetDocumentStats(db *gorm.DB, store *storage.Store) (DocumentStats, error) {
	rows, err := fetchDocuments(db)
	if err != nil {
		return DocumentStats{}, err
	}

	bytes, _, err := store.Usage()
	if err != nil {
		return DocumentStats{}, types.NewError(fiber.StatusInternalServerError, "failed to read storage usage", "documents.storage")
	}

	return DocumentStats{
		Total: len(rows),
		InReview: listfilter.CountWhere(rows, func(r DocumentRow) bool {
			return r.Status == models.DocumentStatusReview
		}),
		Drafts: listfilter.CountWhere(rows, func(r DocumentRow) bool {
			return r.Status == models.DocumentStatusDraft
		}),
		StorageBytes: bytes,
		UploadsToday: listfilter.CountWhere(rows, func(r DocumentRow) bool {
			return listfilter.SameDay(r.CreatedAt, nowUTC())
		}),
	}, nil
}

// GetDocument loads one document by id.
func GetDocument(db *gorm.DB, id string) (*models.Document, error) {
	var doc models.Document
	if err := db.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewError(fiber.StatusNotFound, "document not found", "documents.notfound")
		}
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load document", "documents.fetch")
	}
	return &doc, nil
}

// CreateDocument stores the binary and then inserts the metadata record.
// A metadata failure removes the freshly stored object so nothing is
// orphaned.
func CreateDocument(db *gorm.DB, store *storage.Store, in DocumentInput, file io.Reader, filename string) (*models.Document, error) {
	if err := in.validate(db); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, types.NewError(fiber.StatusBadRequest, "a file is required", "documents.validation.file")
	}

	object, size, err := store.Save(file, filename)
	if err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to store file", "documents.storage")
	}

	doc := models.Document{
		Name:       in.Name,
		ClientID:   in.ClientID,
		Type:       in.Type,
		Category:   in.Category,
		FilePath:   object,
		FileSize:   size,
		Status:     in.Status,
		UploadedBy: in.UploadedBy,
	}
	if err := db.Create(&doc).Error; err != nil {
		_ = store.Remove(object)
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to create document", "documents.create")
	}
	return &doc, nil
}

// UpdateDocument replaces document metadata and, when a replacement file is
// supplied, swaps the stored binary. Ordering: the new object is written
// first, the metadata second, and the old object is deleted only after the
// metadata write succeeded. A failed metadata write removes the new object
// and leaves the old one as the surviving copy.
func UpdateDocument(db *gorm.DB, store *storage.Store, id string, in DocumentInput, file io.Reader, filename string) (*models.Document, error) {
	if err := in.validate(db); err != nil {
		return nil, err
	}

	doc, err := GetDocument(db, id)
	if err != nil {
		return nil, err
	}

	oldObject := doc.FilePath
	replaced := false

	if file != nil {
		object, size, err := store.Save(file, filename)
		if err != nil {
			return nil, types.NewError(fiber.StatusInternalServerError, "failed to store replacement file", "documents.storage")
		}
		doc.FilePath = object
		doc.FileSize = size
		replaced = true
	}

	doc.Name = in.Name
	doc.ClientID = in.ClientID
	doc.Type = in.Type
	doc.Category = in.Category
	doc.Status = in.Status
	doc.UploadedBy = in.UploadedBy

	if err := db.Save(doc).Error; err != nil {
		if replaced {
			_ = store.Remove(doc.FilePath)
		}
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to update document", "documents.update")
	}

	if replaced && oldObject != "" {
		_ = store.Remove(oldObject)
	}
	return doc, nil
}
