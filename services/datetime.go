package services

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// serialEpoch is the spreadsheet date epoch. Using 1899-12-30 (rather than
// the nominal 1899-12-31) folds in the one-day correction for the format's
// phantom 1900-02-29: serials at or past that artifact land on the right
// calendar day without a conditional.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DateFromSerial converts a spreadsheet day-count serial to a calendar date.
func DateFromSerial(serial int) time.Time {
	return serialEpoch.AddDate(0, 0, serial)
}

// SerialFromDate is the inverse of DateFromSerial.
func SerialFromDate(d time.Time) int {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(serialEpoch).Hours() / 24)
}

var clockPattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)

// ParseClock parses "H:MM"/"HH:MM" into minutes since midnight.
// The second return is false for anything that is not a valid time of day.
func ParseClock(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 || min > 59 {
		return 0, false
	}
	return h*60 + min, true
}

// FormatClock renders minutes since midnight as "H:MM" (no leading zero on
// the hour, matching the punch format used by the source documents).
func FormatClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ClockFromFraction converts a fractional-day cell value (0.5 = noon) to a
// clock string, rounded to the nearest minute.
func ClockFromFraction(frac float64) string {
	minutes := int(frac*24*60 + 0.5)
	if minutes >= 24*60 {
		minutes = 24*60 - 1
	}
	if minutes < 0 {
		minutes = 0
	}
	return FormatClock(minutes)
}

// FractionFromClock converts a clock string to a fractional day value.
func FractionFromClock(s string) (float64, bool) {
	minutes, ok := ParseClock(s)
	if !ok {
		return 0, false
	}
	return float64(minutes) / (24 * 60), true
}

// SpanHours returns the fractional-hour length of an active span.
// Inactive or unparseable spans contribute zero; a reversed span yields a
// negative value which is deliberately not clamped (callers own validity).
func SpanHours(s TimeSpan) float64 {
	if !s.Active {
		return 0
	}
	start, ok := ParseClock(s.Start)
	if !ok {
		return 0
	}
	end, ok := ParseClock(s.End)
	if !ok {
		return 0
	}
	return float64(end-start) / 60
}

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(s string) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// FormatISODate renders a date as YYYY-MM-DD.
func FormatISODate(d time.Time) string {
	return d.Format("2006-01-02")
}
