// main.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/pajakdesk/pajakdesk/internal/config"
	"github.com/pajakdesk/pajakdesk/internal/database"
	"github.com/pajakdesk/pajakdesk/internal/handlers"
	"github.com/pajakdesk/pajakdesk/internal/middleware"
	"github.com/pajakdesk/pajakdesk/internal/storage"
	"github.com/pajakdesk/pajakdesk/internal/types"

	_ "github.com/pajakdesk/pajakdesk/docs/api" // Swagger docs
)

// @title PajakDesk API
// @version 1.0.0
// @description Practice management data service for tax consulting firms
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/pajakdesk/pajakdesk

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Open the document store
	store, err := storage.New(cfg.StorageDir)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    cfg.UploadLimitMB * 1024 * 1024,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("pajakdesk")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	clientsHandler := &handlers.ClientsHandler{DB: db}
	documentsHandler := &handlers.DocumentsHandler{DB: db, Store: store}
	schedulesHandler := &handlers.SchedulesHandler{DB: db}
	consultationsHandler := &handlers.ConsultationsHandler{DB: db}
	sptHandler := &handlers.SPTHandler{DB: db}
	workflowsHandler := &handlers.WorkflowsHandler{DB: db}
	analyticsHandler := &handlers.AnalyticsHandler{DB: db, Store: store}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db, Store: store}

	// Client directory
	api.Get("/clients", clientsHandler.ListClients)
	api.Get("/clients/stats", clientsHandler.GetClientStats)
	api.Get("/clients/options", clientsHandler.ListClientOptions)
	api.Get("/clients/:id", clientsHandler.GetClient)
	api.Post("/clients", clientsHandler.CreateClient)
	api.Put("/clients/:id", clientsHandler.UpdateClient)

	// Document archive
	api.Get("/documents", documentsHandler.List)
	api.Get("/documents/stats", documentsHandler.Stats)
	api.Get("/documents/:id/download", documentsHandler.Download)
	api.Get("/documents/:id/view", documentsHandler.View)
	api.Post("/documents", documentsHandler.Upload)
	api.Put("/documents/:id", documentsHandler.Update)

	// Calendar
	api.Get("/schedules", schedulesHandler.List)
	api.Get("/schedules/stats", schedulesHandler.Stats)
	api.Post("/schedules", schedulesHandler.Create)
	api.Put("/schedules/:id", schedulesHandler.Update)

	// Consultations
	api.Get("/consultations", consultationsHandler.List)
	api.Get("/consultations/stats", consultationsHandler.Stats)
	api.Post("/consultations", consultationsHandler.Create)
	api.Put("/consultations/:id", consultationsHandler.Update)

	// Tax returns: filed ledger and forms in preparation
	api.Get("/spt/records", sptHandler.ListRecords)
	api.Get("/spt/forms", sptHandler.ListForms)
	api.Get("/spt/stats", sptHandler.Stats)
	api.Post("/spt/records", sptHandler.CreateRecord)
	api.Put("/spt/records/:id", sptHandler.UpdateRecord)
	api.Post("/spt/forms", sptHandler.CreateForm)
	api.Put("/spt/forms/:id", sptHandler.UpdateForm)

	// Work items
	api.Get("/workflows", workflowsHandler.List)
	api.Get("/workflows/stats", workflowsHandler.Stats)
	api.Post("/workflows", workflowsHandler.Create)
	api.Put("/workflows/:id", workflowsHandler.Update)

	// Practice-wide dashboard
	api.Get("/analytics/summary", analyticsHandler.Summary)
	api.Get("/analytics/client-growth", analyticsHandler.ClientGrowth)

	// Health probe
	api.Get("/health", healthHandler.Check)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a service error
	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	} else if e, ok := err.(*fiber.Error); ok {
		// Check if it's a Fiber error
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
