// filter.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listfilter holds the reducers every list view shares: a free-text
// predicate over designated fields, equality predicates with an "all"
// sentinel, calendar-day matching, and the aggregate helpers behind the
// summary cards. All functions are pure; they run over the collection a
// fetcher has already loaded, never against the database.
package listfilter

import (
	"strings"
	"time"
)

// All is the sentinel filter value that disables an equality predicate.
const All = "all"

// TextMatch reports whether any of fields contains q as a case-insensitive
// substring. An empty q matches everything.
func TextMatch(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Equals reports whether value equals selected under case-insensitive
// comparison. The "all" sentinel (or an empty selection) matches everything.
func Equals(selected, value string) bool {
	if selected == "" || strings.EqualFold(selected, All) {
		return true
	}
	return strings.EqualFold(selected, value)
}

// Apply returns the subset of items for which every predicate holds.
// Predicates compose with AND semantics, so the order they are given in
// never changes the result.
func Apply[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range preds {
			if !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// SameDay reports whether t falls on the given calendar day. Both sides are
// normalized to UTC so the practice and the service agree on day boundaries
// regardless of where a caller sits.
func SameDay(t time.Time, day time.Time) bool {
	return t.UTC().Format("2006-01-02") == day.UTC().Format("2006-01-02")
}
