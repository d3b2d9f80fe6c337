// analytics.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/storage"
	"github.com/pajakdesk/pajakdesk/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// AnalyticsSummary is the practice-wide dashboard aggregate: a one-call
// snapshot of every resource the landing page cards render.
type AnalyticsSummary struct {
	Clients       ClientStats       `json:"clients"`
	Documents     DocumentStats     `json:"documents"`
	Schedules     ScheduleStats     `json:"schedules"`
	SPT           SPTStats          `json:"spt"`
	Workflows     WorkflowStats     `json:"workflows"`
	Consultations ConsultationStats `json:"consultations"`
}

// MonthlyCount is one bucket of a per-month series.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// analyticsDB caps aggregate scans on MySQL so a dashboard refresh cannot
// hold a connection hostage. Other dialects ignore the hint. The returned
// handle is a new session, so each query chained off it clones a fresh
// statement carrying the hint instead of accumulating clauses from the
// previous query.
func analyticsDB(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "mysql" {
		return db.Clauses(hints.New("MAX_EXECUTION_TIME(5000)")).Session(&gorm.Session{})
	}
	return db
}

// GetAnalyticsSummary assembles the dashboard snapshot. Each section reuses
// the page-level stat reducer so the landing cards and the per-page cards
// can never disagree.
func GetAnalyticsSummary(db *gorm.DB, store *storage.Store) (*AnalyticsSummary, error) {
	adb := analyticsDB(db)

	clients, err := GetClientStats(adb)
	if err != nil {
		return nil, err
	}
	documents, err := GetDocumentStats(adb, store)
	if err != nil {
		return nil, err
	}
	schedules, err := GetScheduleStats(adb)
	if err != nil {
		return nil, err
	}
	spt, err := GetSPTStats(adb)
	if err != nil {
		return nil, err
	}
	workflows, err := GetWorkflowStats(adb)
	if err != nil {
		return nil, err
	}
	consultations, err := GetConsultationStats(adb)
	if err != nil {
		return nil, err
	}

	return &AnalyticsSummary{
		Clients:       clients,
		Documents:     documents,
		Schedules:     schedules,
		SPT:           spt,
		Workflows:     workflows,
		Consultations: consultations,
	}, nil
}

// GetMonthlyClientGrowth buckets client signups by creation month over the
// trailing twelve months, oldest first.
func GetMonthlyClientGrowth(db *gorm.DB) ([]MonthlyCount, error) {
	var clients []models.Client
	if err := analyticsDB(db).Order("created_at asc").Find(&clients).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load clients", "analytics.fetch")
	}

	// Anchor on the first of the month before stepping: AddDate from the
	// 29th-31st normalizes into the next month and duplicates buckets.
	now := nowUTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	buckets := make(map[string]int)
	order := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		buckets[key] = 0
		order = append(order, key)
	}

	for _, c := range clients {
		key := c.CreatedAt.UTC().Format("2006-01")
		if _, ok := buckets[key]; ok {
			buckets[key]++
		}
	}

	series := make([]MonthlyCount, 0, len(order))
	for _, key := range order {
		series = append(series, MonthlyCount{Month: key, Count: buckets[key]})
	}
	return series, nil
}
