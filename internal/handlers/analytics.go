// analytics.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"github.com/pajakdesk/pajakdesk/internal/storage"
	"github.com/pajakdesk/pajakdesk/internal/utils"
	"gorm.io/gorm"
)

// AnalyticsHandler handles practice-wide dashboard routes
type AnalyticsHandler struct {
	DB    *gorm.DB
	Store *storage.Store
}

// Summary handles GET /api/analytics/summary
// @Summary Dashboard snapshot
// @Description One-call aggregate across every resource for the landing page
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} services.AnalyticsSummary
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := services.GetAnalyticsSummary(h.DB, h.Store)
	if err != nil {
		return serviceError(c, err, "getAnalyticsSummary")
	}
	return utils.SuccessResponse(c, summary, fiber.StatusOK)
}

// ClientGrowth handles GET /api/analytics/client-growth
// @Summary Monthly client growth
// @Description Client signups bucketed by month over the trailing year
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {array} services.MonthlyCount
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics/client-growth [get]
func (h *AnalyticsHandler) ClientGrowth(c *fiber.Ctx) error {
	series, err := services.GetMonthlyClientGrowth(h.DB)
	if err != nil {
		return serviceError(c, err, "getClientGrowth")
	}
	return utils.SuccessResponse(c, series, fiber.StatusOK)
}
