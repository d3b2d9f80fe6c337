// main.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pajakdesk/pajakdesk/internal/config"
	"github.com/pajakdesk/pajakdesk/internal/database"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"github.com/pajakdesk/pajakdesk/internal/storage"
)

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

	// Open the document store
	store, err := storage.New(cfg.StorageDir)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}

	// Perform health check
	result := services.HealthCheck(cfg, db, store)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
