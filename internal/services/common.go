package services

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/types"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// parseDate parses a dialog date field (2006-01-02). An empty value yields
// nil: dialogs post empty strings for unset dates, which persist as null.
func parseDate(value, errType string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil, types.NewError(fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD", errType)
	}
	return &t, nil
}

// combineDateTime merges the dialog's separate date and time fields into a
// single UTC timestamp. Time defaults to 09:00 when omitted, the schedule
// dialog's seed value.
func combineDateTime(date, clock, errType string) (time.Time, error) {
	if date == "" {
		return time.Time{}, types.NewError(fiber.StatusBadRequest, "a date is required", errType)
	}
	if clock == "" {
		clock = "09:00"
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, types.NewError(fiber.StatusBadRequest, "invalid date or time", errType)
	}
	return t, nil
}

// clampProgress bounds a free-entry completion percentage to 0..100.
func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
