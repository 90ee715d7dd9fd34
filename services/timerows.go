package services

import (
	"fmt"
	"strings"
	"time"
)

// timeRow is one weekday punch row before it becomes a TimeEntry. Punches
// are normalized clock strings; empty string means the punch is absent.
type timeRow struct {
	date    time.Time
	punches [4]string
	totals  [5]string
}

// Default onsite bounds used when a row carries no punches at all.
const (
	defaultOnsiteStart = "7:00"
	defaultOnsiteEnd   = "17:00"
)

// buildEntry turns one punch row into a TimeEntry, folding in the travel
// itinerary and the per-day narrative. The second return is false for rows
// that carry neither a punch nor a travel leg; those are skipped, not
// emitted as zero-hour entries.
func buildEntry(row timeRow, legs []TravelLeg, homeBase string, narratives map[string]string) (TimeEntry, bool) {
	leg, hasLeg := legForDate(legs, row.date)

	hasPunch := false
	for _, p := range row.punches {
		if p != "" {
			hasPunch = true
			break
		}
	}
	if !hasPunch && !hasLeg {
		return TimeEntry{}, false
	}

	entry := TimeEntry{Date: FormatISODate(row.date)}

	// Lunch is the gap between the midday out/in punches.
	if row.punches[1] != "" && row.punches[2] != "" {
		out, ok1 := ParseClock(row.punches[1])
		in, ok2 := ParseClock(row.punches[2])
		if ok1 && ok2 && in > out {
			entry.LunchDuration = float64(in-out) / 60
			entry.Lunch = true
		}
	}

	onsiteStart := row.punches[0]
	onsiteEnd := row.punches[3]
	if onsiteEnd == "" {
		onsiteEnd = row.punches[1]
	}
	if onsiteStart == "" {
		onsiteStart = defaultOnsiteStart
	}
	if onsiteEnd == "" {
		onsiteEnd = defaultOnsiteEnd
	}

	if hasLeg {
		if strings.EqualFold(leg.DepartLocation, homeBase) {
			// Outbound: the day starts with travel to the site, so onsite
			// begins at arrival and no lunch is taken en route.
			entry.TravelTo = TimeSpan{Active: true, Start: leg.DepartTime, End: leg.ArriveTime}
			onsiteStart = leg.ArriveTime
			entry.Lunch = false
			entry.LunchDuration = 0
		} else {
			// Homebound: onsite ends when the return leg departs.
			entry.TravelHome = TimeSpan{Active: true, Start: leg.DepartTime, End: leg.ArriveTime}
			onsiteEnd = leg.DepartTime
		}
	}

	entry.Onsite = TimeSpan{Active: true, Start: onsiteStart, End: onsiteEnd}
	entry.ServiceWork = narrativeForDate(narratives, row.date)
	return entry, true
}

func legForDate(legs []TravelLeg, date time.Time) (TravelLeg, bool) {
	key := FormatISODate(date)
	for _, leg := range legs {
		if leg.Date == key {
			return leg, true
		}
	}
	return TravelLeg{}, false
}

// narrativeForDate matches a per-day narrative to its entry by calendar
// date, trying "M/D" first and "MM/DD" second to tolerate inconsistent
// zero-padding in the source headers.
func narrativeForDate(narratives map[string]string, date time.Time) string {
	if len(narratives) == 0 {
		return ""
	}
	bare := fmt.Sprintf("%d/%d", int(date.Month()), date.Day())
	if text, ok := narratives[bare]; ok {
		return text
	}
	padded := fmt.Sprintf("%02d/%02d", int(date.Month()), date.Day())
	if text, ok := narratives[padded]; ok {
		return text
	}
	return ""
}
