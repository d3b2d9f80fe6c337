// documents.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"github.com/pajakdesk/pajakdesk/internal/storage"
	"github.com/pajakdesk/pajakdesk/internal/types"
	"github.com/pajakdesk/pajakdesk/internal/utils"
	"gorm.io/gorm"
)

// DocumentsHandler handles document archive routes
type DocumentsHandler struct {
	DB    *gorm.DB
	Store *storage.Store
}

// documentForm reads the multipart metadata fields and the optional file
// part. The caller owns closing the returned reader.
func documentForm(c *fiber.Ctx) (services.DocumentInput, io.ReadCloser, string, error) {
	in := services.DocumentInput{
		Name:       c.FormValue("name"),
		ClientID:   c.FormValue("client_id"),
		Type:       c.FormValue("type"),
		Category:   c.FormValue("category"),
		Status:     models.DocumentStatus(c.FormValue("status")),
		UploadedBy: c.FormValue("uploaded_by"),
	}

	header, err := c.FormFile("file")
	if err != nil {
		return in, nil, "", nil
	}
	file, err := header.Open()
	if err != nil {
		return in, nil, "", types.NewError(fiber.StatusBadRequest, "unreadable file part", "documents.upload")
	}
	return in, file, header.Filename, nil
}

// Upload handles POST /api/documents
// @Summary Upload document
// @Description Store a file and insert its metadata record
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Document name"
// @Param client_id formData string true "Client ID"
// @Param type formData string true "Document type"
// @Param category formData string true "Document category"
// @Param status formData string false "Document status"
// @Param file formData file true "Document binary"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /documents [post]
func (h *DocumentsHandler) Upload(c *fiber.Ctx) error {
	in, file, filename, err := documentForm(c)
	if err != nil {
		return serviceError(c, err, "uploadDocument")
	}
	var reader io.Reader
	if file != nil {
		defer file.Close()
		reader = file
	}

	doc, err := services.CreateDocument(h.DB, h.Store, in, reader, filename)
	if err != nil {
		return serviceError(c, err, "uploadDocument")
	}
	return utils.MutationSuccessResponse(c, doc)
}

// Update handles PUT /api/documents/:id
// @Summary Update document
// @Description Replace document metadata and optionally swap the stored file
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Document ID"
// @Param file formData file false "Replacement binary"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /documents/{id} [put]
func (h *DocumentsHandler) Update(c *fiber.Ctx) error {
	in, file, filename, err := documentForm(c)
	if err != nil {
		return serviceError(c, err, "updateDocument")
	}
	var reader io.Reader
	if file != nil {
		defer file.Close()
		reader = file
	}

	doc, err := services.UpdateDocument(h.DB, h.Store, c.Params("id"), in, reader, filename)
	if err != nil {
		return serviceError(c, err, "updateDocument")
	}
	return utils.MutationSuccessResponse(c, doc)
}

// List handles GET /api/documents
// @Summary List documents
// @Description List documents filtered by free text, category and status
// @Tags Documents
// @Accept json
// @Produce json
// @Param q query string false "Free-text filter over document and client name"
// @Param category query string false "Category filter, 'all' or empty for no filter"
// @Param status query string false "Status filter, 'all' or empty for no filter"
// @Success 200 {array} services.DocumentRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /documents [get]
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListDocuments(h.DB, c.Query("q"), c.Query("category"), c.Query("status"))
	if err != nil {
		return serviceError(c, err, "listDocuments")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// Stats handles GET /api/documents/stats
// @Summary Document summary cards
// @Description Aggregate counts and storage usage for the documents page
// @Tags Documents
// @Accept json
// @Produce json
// @Success 200 {object} services.DocumentStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /documents/stats [get]
func (h *DocumentsHandler) Stats(c *fiber.Ctx) error {
	stats, err := services.GetDocumentStats(h.DB, h.Store)
	if err != nil {
		return serviceError(c, err, "getDocumentStats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// Download handles GET /api/documents/:id/download
// @Summary Download document
// @Description Stream the stored binary as an attachment
// @Tags Documents
// @Produce application/octet-stream
// @Param id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id}/download [get]
func (h *DocumentsHandler) Download(c *fiber.Ctx) error {
	return h.sendFile(c, true)
}

// View handles GET /api/documents/:id/view
// @Summary View document
// @Description Stream the stored binary inline
// @Tags Documents
// @Produce application/octet-stream
// @Param id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id}/view [get]
func (h *DocumentsHandler) View(c *fiber.Ctx) error {
	return h.sendFile(c, false)
}

func (h *DocumentsHandler) sendFile(c *fiber.Ctx, attachment bool) error {
	doc, err := services.GetDocument(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "sendDocument")
	}

	path, err := h.Store.Path(doc.FilePath)
	if err != nil {
		return utils.ErrorResponse(c, "invalid stored path", fiber.StatusInternalServerError, "sendDocument")
	}
	if _, err := h.Store.Stat(doc.FilePath); err != nil {
		return utils.NotFoundResponse(c, "stored file is missing")
	}

	if attachment {
		return c.Download(path, doc.Name)
	}
	return c.SendFile(path)
}
