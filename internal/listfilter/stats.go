// stats.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package listfilter

import "math"

// CountWhere counts the items for which pred holds.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// SumWhere sums value(item) over the items for which pred holds. Pass a
// pred of nil to sum everything.
func SumWhere[T any](items []T, pred func(T) bool, value func(T) float64) float64 {
	var sum float64
	for _, item := range items {
		if pred == nil || pred(item) {
			sum += value(item)
		}
	}
	return sum
}

// Percent returns part/total as a percentage rounded to one decimal place.
// A zero total yields 0, never NaN: every summary card divides by the mirror
// size and the mirror may legitimately be empty.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
