// spt.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"github.com/pajakdesk/pajakdesk/internal/utils"
	"gorm.io/gorm"
)

// SPTHandler handles tax-return routes: the filed ledger and the forms
// in preparation.
type SPTHandler struct {
	DB *gorm.DB
}

// ListRecords handles GET /api/spt/records
// @Summary List SPT records
// @Description List filed tax-return entries filtered by free text and status
// @Tags SPT
// @Accept json
// @Produce json
// @Param q query string false "Free-text filter over type, period and client name"
// @Param status query string false "Status filter, 'all' or empty for no filter"
// @Success 200 {array} services.SPTRecordRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /spt/records [get]
func (h *SPTHandler) ListRecords(c *fiber.Ctx) error {
	rows, err := services.ListSPTRecords(h.DB, c.Query("q"), c.Query("status"))
	if err != nil {
		return serviceError(c, err, "listSPTRecords")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// ListForms handles GET /api/spt/forms
// @Summary List SPT forms
// @Description List tax returns in preparation filtered by free text and status
// @Tags SPT
// @Accept json
// @Produce json
// @Param q query string false "Free-text filter over title, type, period and client name"
// @Param status query string false "Status filter, 'all' or empty for no filter"
// @Success 200 {array} services.SPTFormRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /spt/forms [get]
func (h *SPTHandler) ListForms(c *fiber.Ctx) error {
	rows, err := services.ListSPTForms(h.DB, c.Query("q"), c.Query("status"))
	if err != nil {
		return serviceError(c, err, "listSPTForms")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// Stats handles GET /api/spt/stats
// @Summary SPT summary cards
// @Description Aggregates across filed entries and forms in preparation
// @Tags SPT
// @Accept json
// @Produce json
// @Success 200 {object} services.SPTStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /spt/stats [get]
func (h *SPTHandler) Stats(c *fiber.Ctx) error {
	stats, err := services.GetSPTStats(h.DB)
	if err != nil {
		return serviceError(c, err, "getSPTStats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// CreateRecord handles POST /api/spt/records
// @Summary Create SPT record
// @Description Insert one filed-ledger entry
// @Tags SPT
// @Accept json
// @Produce json
// @Param body body services.SPTRecordInput true "Record fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /spt/records [post]
func (h *SPTHandler) CreateRecord(c *fiber.Ctx) error {
	var in services.SPTRecordInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createSPTRecord")
	}
	record, err := services.CreateSPTRecord(h.DB, in)
	if err != nil {
		return serviceError(c, err, "createSPTRecord")
	}
	return utils.MutationSuccessResponse(c, record)
}

// UpdateRecord handles PUT /api/spt/records/:id
// @Summary Update SPT record
// @Description Replace the form-backed fields of a filed entry
// @Tags SPT
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param body body services.SPTRecordInput true "Record fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /spt/records/{id} [put]
func (h *SPTHandler) UpdateRecord(c *fiber.Ctx) error {
	var in services.SPTRecordInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "updateSPTRecord")
	}
	record, err := services.UpdateSPTRecord(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceError(c, err, "updateSPTRecord")
	}
	return utils.MutationSuccessResponse(c, record)
}

// CreateForm handles POST /api/spt/forms
// @Summary Create SPT form
// @Description Insert one tax return in preparation
// @Tags SPT
// @Accept json
// @Produce json
// @Param body body services.SPTFormInput true "Form fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /spt/forms [post]
func (h *SPTHandler) CreateForm(c *fiber.Ctx) error {
	var in services.SPTFormInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createSPTForm")
	}
	form, err := services.CreateSPTForm(h.DB, in)
	if err != nil {
		return serviceError(c, err, "createSPTForm")
	}
	return utils.MutationSuccessResponse(c, form)
}

// UpdateForm handles PUT /api/spt/forms/:id
// @Summary Update SPT form
// @Description Replace the form-backed fields of a form in preparation
// @Tags SPT
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param body body services.SPTFormInput true "Form fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /spt/forms/{id} [put]
func (h *SPTHandler) UpdateForm(c *fiber.Ctx) error {
	var in services.SPTFormInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "updateSPTForm")
	}
	form, err := services.UpdateSPTForm(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceError(c, err, "updateSPTForm")
	}
	return utils.MutationSuccessResponse(c, form)
}
