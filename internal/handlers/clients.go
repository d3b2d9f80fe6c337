// clients.go
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

// ClientsHandler handles client directory routes
type ClientsHandler struct {
	DB *gorm.DB
}

// ListClients handles GET /api/clients
// @Summary List clients
// @Description List clients filtered by free text, status and type
// @Tags Clients
// @Accept json
// @Produce json
// @Param q query string false "Free-text filter over name, npwp and contact person"
// @Param status query string false "Status filter, 'all' or empty for no filter"
// @Param type query string false "Type filter, 'all' or empty for no filter"
// @Success 200 {array} models.Client
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /clients [get]
func (h *ClientsHandler) ListClients(c *fiber.Ctx) error {
	clients, err := services.ListClients(h.DB, c.Query("q"), c.Query("status"), c.Query("type"))
	if err != nil {
		return serviceError(c, err, "listClients")
	}
	return utils.SuccessResponse(c, clients, fiber.StatusOK)
}

// GetClientStats handles GET /api/clients/stats
// @Summary Client summary cards
// @Description Aggregate counts for the clients page summary cards
// @Tags Clients
// @Accept json
// @Produce json
// @Success 200 {object} services.ClientStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /clients/stats [get]
func (h *ClientsHandler) GetClientStats(c *fiber.Ctx) error {
	stats, err := services.GetClientStats(h.DB)
	if err != nil {
		return serviceError(c, err, "getClientStats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// ListClientOptions handles GET /api/clients/options
// @Summary Active client options
// @Description Id and name of active clients, for populating dialog selects
// @Tags Clients
// @Accept json
// @Produce json
// @Success 200 {array} services.ClientOption
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /clients/options [get]
func (h *ClientsHandler) ListClientOptions(c *fiber.Ctx) error {
	options, err := services.ListActiveClientOptions(h.DB)
	if err != nil {
		return serviceError(c, err, "listClientOptions")
	}
	return utils.SuccessResponse(c, options, fiber.StatusOK)
}

// GetClient handles GET /api/clients/:id
// @Summary Get one client
// @Description Load a single client by id
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /clients/{id} [get]
func (h *ClientsHandler) GetClient(c *fiber.Ctx) error {
	client, err := services.GetClient(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "getClient")
	}
	return utils.SuccessResponse(c, client, fiber.StatusOK)
}

// CreateClient handles POST /api/clients
// @Summary Create client
// @Description Insert one client record
// @Tags Clients
// @Accept json
// @Produce json
// @Param body body services.ClientInput true "Client fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /clients [post]
func (h *ClientsHandler) CreateClient(c *fiber.Ctx) error {
	var in services.ClientInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createClient")
	}
	client, err := services.CreateClient(h.DB, in)
	if err != nil {
		return serviceError(c, err, "createClient")
	}
	return utils.MutationSuccessResponse(c, client)
}

// UpdateClient handles PUT /api/clients/:id
// @Summary Update client
// @Description Replace the form-backed fields of an existing client
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param body body services.ClientInput true "Client fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /clients/{id} [put]
func (h *ClientsHandler) UpdateClient(c *fiber.Ctx) error {
	var in services.ClientInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "updateClient")
	}
	client, err := services.UpdateClient(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceError(c, err, "updateClient")
	}
	return utils.MutationSuccessResponse(c, client)
}
