// consultations.go
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

// ConsultationsHandler handles consultation routes
type ConsultationsHandler struct {
	DB *gorm.DB
}

// List handles GET /api/consultations
// @Summary List consultations
// @Description List consultations filtered by free text, type and status
// @Tags Consultations
// @Accept json
// @Produce json
// @Param q query string false "Free-text filter over topic, client name and consultant"
// @Param type query string false "Type filter, 'all' or empty for no filter"
// @Param status query string false "Status filter, 'all' or empty for no filter"
// @Success 200 {array} services.ConsultationRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /consultations [get]
func (h *ConsultationsHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListConsultations(h.DB, c.Query("q"), c.Query("type"), c.Query("status"))
	if err != nil {
		return serviceError(c, err, "listConsultations")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// Stats handles GET /api/consultations/stats
// @Summary Consultation summary cards
// @Description Aggregate counts for the consultations page summary cards
// @Tags Consultations
// @Accept json
// @Produce json
// @Success 200 {object} services.ConsultationStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /consultations/stats [get]
func (h *ConsultationsHandler) Stats(c *fiber.Ctx) error {
	stats, err := services.GetConsultationStats(h.DB)
	if err != nil {
		return serviceError(c, err, "getConsultationStats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// Create handles POST /api/consultations
// @Summary Create consultation
// @Description Insert one consultation record
// @Tags Consultations
// @Accept json
// @Produce json
// @Param body body services.ConsultationInput true "Consultation fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /consultations [post]
func (h *ConsultationsHandler) Create(c *fiber.Ctx) error {
	var in services.ConsultationInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createConsultation")
	}
	consultation, err := services.CreateConsultation(h.DB, in)
	if err != nil {
		return serviceError(c, err, "createConsultation")
	}
	return utils.MutationSuccessResponse(c, consultation)
}

// Update handles PUT /api/consultations/:id
// @Summary Update consultation
// @Description Replace the form-backed fields of an existing record
// @Tags Consultations
// @Accept json
// @Produce json
// @Param id path string true "Consultation ID"
// @Param body body services.ConsultationInput true "Consultation fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /consultations/{id} [put]
func (h *ConsultationsHandler) Update(c *fiber.Ctx) error {
	var in services.ConsultationInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "updateConsultation")
	}
	consultation, err := services.UpdateConsultation(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceError(c, err, "updateConsultation")
	}
	return utils.MutationSuccessResponse(c, consultation)
}
