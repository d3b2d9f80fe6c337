// workflows.go
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

// WorkflowsHandler handles work-item tracking routes
type WorkflowsHandler struct {
	DB *gorm.DB
}

// List handles GET /api/workflows
// @Summary List workflows
// @Description List work items filtered by free text, category, status and priority
// @Tags Workflows
// @Accept json
// @Produce json
// @Param q query string false "Free-text filter over title, client name and assignee"
// @Param category query string false "Category filter, 'all' or empty for no filter"
// @Param status query string false "Status filter, 'all' or empty for no filter"
// @Param priority query string false "Priority filter, 'all' or empty for no filter"
// @Success 200 {array} services.WorkflowRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workflows [get]
func (h *WorkflowsHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListWorkflows(h.DB, c.Query("q"), c.Query("category"), c.Query("status"), c.Query("priority"))
	if err != nil {
		return serviceError(c, err, "listWorkflows")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// Stats handles GET /api/workflows/stats
// @Summary Workflow summary cards
// @Description Aggregate counts for the workflows page summary cards
// @Tags Workflows
// @Accept json
// @Produce json
// @Success 200 {object} services.WorkflowStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workflows/stats [get]
func (h *WorkflowsHandler) Stats(c *fiber.Ctx) error {
	stats, err := services.GetWorkflowStats(h.DB)
	if err != nil {
		return serviceError(c, err, "getWorkflowStats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// Create handles POST /api/workflows
// @Summary Create workflow
// @Description Insert one work item
// @Tags Workflows
// @Accept json
// @Produce json
// @Param body body services.WorkflowInput true "Workflow fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workflows [post]
func (h *WorkflowsHandler) Create(c *fiber.Ctx) error {
	var in services.WorkflowInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createWorkflow")
	}
	workflow, err := services.CreateWorkflow(h.DB, in)
	if err != nil {
		return serviceError(c, err, "createWorkflow")
	}
	return utils.MutationSuccessResponse(c, workflow)
}

// Update handles PUT /api/workflows/:id
// @Summary Update workflow
// @Description Replace the form-backed fields of an existing work item
// @Tags Workflows
// @Accept json
// @Produce json
// @Param id path string true "Workflow ID"
// @Param body body services.WorkflowInput true "Workflow fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workflows/{id} [put]
func (h *WorkflowsHandler) Update(c *fiber.Ctx) error {
	var in services.WorkflowInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "updateWorkflow")
	}
	workflow, err := services.UpdateWorkflow(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceError(c, err, "updateWorkflow")
	}
	return utils.MutationSuccessResponse(c, workflow)
}
