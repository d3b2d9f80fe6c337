package listfilter_test

import (
	"testing"
	"time"

	"github.com/pajakdesk/pajakdesk/internal/listfilter"
)

type record struct {
	Name    string
	NPWP    string
	Contact string
	Status  string
	Type    string
}

var mirror = []record{
	{Name: "PT Teknologi Maju", NPWP: "01.234.567.8-901.000", Contact: "Budi Santoso", Status: "Active", Type: "Company"},
	{Name: "CV Berkah Jaya", NPWP: "02.345.678.9-012.000", Contact: "Siti Rahayu", Status: "Active", Type: "Partnership"},
	{Name: "Ahmad Wijaya", NPWP: "03.456.789.0-123.000", Contact: "Ahmad Wijaya", Status: "Active", Type: "Individual"},
	{Name: "PT Digital Nusantara", NPWP: "04.567.890.1-234.000", Contact: "Maria Gonzalez", Status: "Inactive", Type: "Company"},
}

func searchPred(q string) func(record) bool {
	return func(r record) bool {
		return listfilter.TextMatch(q, r.Name, r.NPWP, r.Contact)
	}
}

// TestTextMatchEmptyQuery verifies an empty search returns the mirror unchanged.
func TestTextMatchEmptyQuery(t *testing.T) {
	got := listfilter.Apply(mirror, searchPred(""))
	if len(got) != len(mirror) {
		t.Errorf("Expected %d records for empty query, got %d", len(mirror), len(got))
	}
}

// TestTextMatchSubstring verifies case-insensitive substring containment
// OR-ed across the designated fields.
func TestTextMatchSubstring(t *testing.T) {
	got := listfilter.Apply(mirror, searchPred("teknologi"))
	if len(got) != 1 || got[0].Name != "PT Teknologi Maju" {
		t.Errorf("Expected only PT Teknologi Maju, got %v", got)
	}

	// Match on a non-name field
	got = listfilter.Apply(mirror, searchPred("maria"))
	if len(got) != 1 || got[0].Name != "PT Digital Nusantara" {
		t.Errorf("Expected contact-field match for 'maria', got %v", got)
	}

	// NPWP substring
	got = listfilter.Apply(mirror, searchPred("02.345"))
	if len(got) != 1 || got[0].Name != "CV Berkah Jaya" {
		t.Errorf("Expected NPWP match, got %v", got)
	}
}

// TestEqualsSentinel verifies the "all" sentinel disables the predicate.
func TestEqualsSentinel(t *testing.T) {
	for _, sel := range []string{"all", "ALL", ""} {
		got := listfilter.Apply(mirror, func(r record) bool {
			return listfilter.Equals(sel, r.Status)
		})
		if len(got) != len(mirror) {
			t.Errorf("Sentinel %q should match everything, got %d of %d", sel, len(got), len(mirror))
		}
	}
}

// TestEqualsCaseInsensitive verifies exact case-insensitive field equality.
func TestEqualsCaseInsensitive(t *testing.T) {
	got := listfilter.Apply(mirror, func(r record) bool {
		return listfilter.Equals("inactive", r.Status)
	})
	if len(got) != 1 || got[0].Name != "PT Digital Nusantara" {
		t.Errorf("Expected the single Inactive record, got %v", got)
	}
}

// TestApplyANDSemantics verifies that composing predicates yields the
// intersection of their individual results, in any order.
func TestApplyANDSemantics(t *testing.T) {
	text := searchPred("pt")
	status := func(r record) bool { return listfilter.Equals("Active", r.Status) }

	ab := listfilter.Apply(mirror, text, status)
	ba := listfilter.Apply(mirror, status, text)

	if len(ab) != 1 || ab[0].Name != "PT Teknologi Maju" {
		t.Errorf("Expected intersection {PT Teknologi Maju}, got %v", ab)
	}
	if len(ba) != len(ab) || ba[0].Name != ab[0].Name {
		t.Errorf("Predicate order changed the result: %v vs %v", ab, ba)
	}
}

// TestPercentZeroDenominator verifies stats over an empty mirror are 0,
// never NaN.
func TestPercentZeroDenominator(t *testing.T) {
	if got := listfilter.Percent(0, 0); got != 0 {
		t.Errorf("Percent(0, 0) = %v, want 0", got)
	}
	if got := listfilter.Percent(3, 0); got != 0 {
		t.Errorf("Percent(3, 0) = %v, want 0", got)
	}
}

// TestPercentOneDecimal verifies the 3-of-4 active case rounds to 75.0.
func TestPercentOneDecimal(t *testing.T) {
	active := listfilter.CountWhere(mirror, func(r record) bool {
		return r.Status == "Active"
	})
	if got := listfilter.Percent(active, len(mirror)); got != 75.0 {
		t.Errorf("Percent(%d, %d) = %v, want 75.0", active, len(mirror), got)
	}
	if got := listfilter.Percent(1, 3); got != 33.3 {
		t.Errorf("Percent(1, 3) = %v, want 33.3", got)
	}
}

// TestSumWhere verifies conditional and unconditional sums.
func TestSumWhere(t *testing.T) {
	amounts := []float64{100, 250.5, 0}
	sum := listfilter.SumWhere(amounts, nil, func(v float64) float64 { return v })
	if sum != 350.5 {
		t.Errorf("SumWhere = %v, want 350.5", sum)
	}

	sum = listfilter.SumWhere(amounts, func(v float64) bool { return v > 100 }, func(v float64) float64 { return v })
	if sum != 250.5 {
		t.Errorf("Conditional SumWhere = %v, want 250.5", sum)
	}
}

// TestSameDay verifies calendar-day matching on UTC day boundaries.
func TestSameDay(t *testing.T) {
	day := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)

	entries := []time.Time{
		time.Date(2025, 7, 9, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 9, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
	}

	got := listfilter.Apply(entries, func(ts time.Time) bool {
		return listfilter.SameDay(ts, day)
	})
	if len(got) != 2 {
		t.Errorf("Expected 2 entries on 2025-07-09, got %d", len(got))
	}

	// A non-UTC timestamp normalizes to the UTC day
	jakarta := time.FixedZone("WIB", 7*3600)
	late := time.Date(2025, 7, 10, 5, 0, 0, 0, jakarta) // 2025-07-09 22:00 UTC
	if !listfilter.SameDay(late, day) {
		t.Error("Expected WIB timestamp to match its UTC calendar day")
	}
}
