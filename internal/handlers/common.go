// common.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/types"
	"github.com/pajakdesk/pajakdesk/internal/utils"
)

// serviceError renders a service-layer failure. Services report through
// CustomError with an HTTP code and a type tag; anything else is treated
// as a 500.
func serviceError(c *fiber.Ctx, err error, fallbackType string) error {
	var custom *types.CustomError
	if errors.As(err, &custom) {
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, fallbackType)
}
