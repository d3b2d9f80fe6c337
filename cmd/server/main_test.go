package main

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/types"
)

// TestCustomErrorHandlerRendersServiceError verifies a service error that
// reaches the global handler keeps its code and type tag in the envelope
func TestCustomErrorHandlerRendersServiceError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: customErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return types.NewError(fiber.StatusConflict, "record already filed", "spt.records.conflict")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("Expected status 409, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["ok"] != false {
		t.Error("Expected ok=false in error envelope")
	}
	if result["message"] != "record already filed" {
		t.Errorf("Expected service message, got %v", result["message"])
	}
	if result["type"] != "spt.records.conflict" {
		t.Errorf("Expected service type tag, got %v", result["type"])
	}
}

// TestCustomErrorHandlerRendersFiberError verifies plain fiber errors still
// map onto the envelope with their own status code
func TestCustomErrorHandlerRendersFiberError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: customErrorHandler})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusTeapot {
		t.Fatalf("Expected status 418, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["message"] != "short and stout" {
		t.Errorf("Expected fiber message, got %v", result["message"])
	}
	if result["type"] != "unknown" {
		t.Errorf("Expected unknown type for fiber errors, got %v", result["type"])
	}
}
