// schedules.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"github.com/pajakdesk/pajakdesk/internal/utils"
	"gorm.io/gorm"
)

// SchedulesHandler handles calendar routes
type SchedulesHandler struct {
	DB *gorm.DB
}

// List handles GET /api/schedules
// @Summary List schedules
// @Description List calendar entries filtered by day, free text, type and status
// @Tags Schedules
// @Accept json
// @Produce json
// @Param date query string false "Calendar day filter, YYYY-MM-DD"
// @Param q query string false "Free-text filter over title and client name"
// @Param type query string false "Type filter, 'all' or empty for no filter"
// @Param status query string false "Status filter, 'all' or empty for no filter"
// @Success 200 {array} services.ScheduleRow
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /schedules [get]
func (h *SchedulesHandler) List(c *fiber.Ctx) error {
	var day *time.Time
	if date := c.Query("date"); date != "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			return utils.ErrorResponse(c, "invalid date, expected YYYY-MM-DD", fiber.StatusBadRequest, "listSchedules")
		}
		day = &t
	}

	rows, err := services.ListSchedules(h.DB, day, c.Query("q"), c.Query("type"), c.Query("status"))
	if err != nil {
		return serviceError(c, err, "listSchedules")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// Stats handles GET /api/schedules/stats
// @Summary Schedule summary cards
// @Description Aggregate counts for the calendar page summary cards
// @Tags Schedules
// @Accept json
// @Produce json
// @Success 200 {object} services.ScheduleStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /schedules/stats [get]
func (h *SchedulesHandler) Stats(c *fiber.Ctx) error {
	stats, err := services.GetScheduleStats(h.DB)
	if err != nil {
		return serviceError(c, err, "getScheduleStats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// Create handles POST /api/schedules
// @Summary Create schedule
// @Description Insert one calendar entry
// @Tags Schedules
// @Accept json
// @Produce json
// @Param body body services.ScheduleInput true "Schedule fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /schedules [post]
func (h *SchedulesHandler) Create(c *fiber.Ctx) error {
	var in services.ScheduleInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createSchedule")
	}
	schedule, err := services.CreateSchedule(h.DB, in)
	if err != nil {
		return serviceError(c, err, "createSchedule")
	}
	return utils.MutationSuccessResponse(c, schedule)
}

// Update handles PUT /api/schedules/:id
// @Summary Update schedule
// @Description Replace the form-backed fields of an existing entry
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param body body services.ScheduleInput true "Schedule fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /schedules/{id} [put]
func (h *SchedulesHandler) Update(c *fiber.Ctx) error {
	var in services.ScheduleInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "updateSchedule")
	}
	schedule, err := services.UpdateSchedule(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceError(c, err, "updateSchedule")
	}
	return utils.MutationSuccessResponse(c, schedule)
}
