// backend-go/internal/dates/dates.go
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Spreadsheet serial 25569 is 1970-01-01. The serial scale carries the
// spreadsheet epoch's fictitious leap day; conversions must match it, not
// correct it, so dates stay compatible with the sheet feed.
const serialEpochOffset = 25569

const msPerDay = 86400000

var (
	serialPattern   = regexp.MustCompile(`^\d+(\.\d+)?$`)
	dayFirstPattern = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	canonicalShape  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// genericFormats are tried in order for strings that are neither serials nor
// day-first dates.
var genericFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006",
}

// NormalizeSerial converts a spreadsheet date serial to a calendar date.
// Non-positive serials have no calendar meaning and yield nil.
func NormalizeSerial(serial float64) *time.Time {
	if serial <= 0 {
		return nil
	}
	ms := int64((serial - serialEpochOffset) * msPerDay)
	t := time.UnixMilli(ms).UTC()
	return &t
}

// Normalize converts a raw sheet cell into a calendar date, or nil when the
// value is unparseable. Pure-numeric strings are tried as serials before any
// generic parsing: "45123" is a valid serial but an invalid calendar string,
// and "27-11-2025" must never be read as the number 27.
func Normalize(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	if serialPattern.MatchString(raw) {
		serial, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		return NormalizeSerial(serial)
	}

	// Day-month-year, not month-day-year.
	if m := dayFirstPattern.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		// Out-of-range components roll over, matching calendar-constructor
		// semantics rather than rejecting the row.
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return &t
	}

	for _, format := range genericFormats {
		if t, err := time.Parse(format, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}

	return nil
}

// Canonical formats a date as "YYYY-MM-DD", empty for nil.
func Canonical(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// Display converts a canonical "YYYY-MM-DD" string to "DD-MM-YYYY".
// Anything not in canonical shape passes through unchanged.
func Display(canonical string) string {
	m := canonicalShape.FindStringSubmatch(canonical)
	if m == nil {
		return canonical
	}
	return fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
}
