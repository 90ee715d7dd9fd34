package services

import "time"

// ChargeBucket is one billed tier: hours at a fixed rate.
type ChargeBucket struct {
	Hours  float64 `json:"hours"`
	Rate   float64 `json:"rate"`
	Charge float64 `json:"charge"`
}

// EntryHours is the per-entry derivation the charge summary is built from.
type EntryHours struct {
	Travel   float64 `json:"travel"`
	Work     float64 `json:"work"`
	Straight float64 `json:"straight"`
	Overtime float64 `json:"overtime"`
	Double   float64 `json:"double"`
	Total    float64 `json:"total"`
}

// ChargeSummary aggregates an entry list into labor and travel buckets.
type ChargeSummary struct {
	Straight              ChargeBucket `json:"straight"`
	Overtime              ChargeBucket `json:"overtime"`
	Double                ChargeBucket `json:"double"`
	WeekdayTravel         ChargeBucket `json:"weekdayTravel"`
	SaturdayTravel        ChargeBucket `json:"saturdayTravel"`
	SundayTravel          ChargeBucket `json:"sundayTravel"`
	LaborSubtotal         float64      `json:"laborSubtotal"`
	TravelChargesSubtotal float64      `json:"travelChargesSubtotal"`
}

// straightDailyCap is the weekday hour count billed at the straight rate;
// the remainder bills as overtime.
const straightDailyCap = 8.0

// CalcEntryHours derives travel and work hours for one entry and splits the
// work hours into pay tiers. Reversed spans yield negative hours unclamped;
// span validity is the caller's contract.
func CalcEntryHours(e TimeEntry) EntryHours {
	var h EntryHours
	h.Travel = SpanHours(e.TravelTo) + SpanHours(e.TravelHome)

	if e.Onsite.Active && !e.TravelOnly {
		h.Work = SpanHours(e.Onsite)
		if e.Lunch {
			h.Work -= e.LunchDuration
		}
	}

	// Tier priority: holiday, then Sunday, then Saturday, then weekday
	// straight up to the daily cap with the remainder as overtime.
	switch {
	case e.Holiday:
		h.Double = h.Work
	case weekdayOf(e.Date) == time.Sunday:
		h.Double = h.Work
	case weekdayOf(e.Date) == time.Saturday:
		h.Overtime = h.Work
	default:
		h.Straight = h.Work
		if h.Work > straightDailyCap {
			h.Straight = straightDailyCap
			h.Overtime = h.Work - straightDailyCap
		}
	}

	h.Total = h.Travel + h.Work
	return h
}

// CalcCharges aggregates derived hours across all entries into the six
// charge buckets. Pure: same entries and rates, same summary. Travel hours
// bucket by the calendar weekday of the date alone; the holiday flag moves
// labor to double time but never reroutes travel (see rate policy notes).
func CalcCharges(entries []TimeEntry, rates RateTable) ChargeSummary {
	var s ChargeSummary
	for _, e := range entries {
		h := CalcEntryHours(e)
		s.Straight.Hours += h.Straight
		s.Overtime.Hours += h.Overtime
		s.Double.Hours += h.Double

		switch weekdayOf(e.Date) {
		case time.Saturday:
			s.SaturdayTravel.Hours += h.Travel
		case time.Sunday:
			s.SundayTravel.Hours += h.Travel
		default:
			s.WeekdayTravel.Hours += h.Travel
		}
	}

	price := func(b *ChargeBucket, rate float64) {
		b.Rate = rate
		b.Charge = b.Hours * rate
	}
	price(&s.Straight, rates.Straight)
	price(&s.Overtime, rates.Overtime)
	price(&s.Double, rates.Double)
	price(&s.WeekdayTravel, rates.WeekdayTravel)
	price(&s.SaturdayTravel, rates.SaturdayTravel)
	price(&s.SundayTravel, rates.SundayTravel)

	s.LaborSubtotal = s.Straight.Charge + s.Overtime.Charge + s.Double.Charge
	s.TravelChargesSubtotal = s.WeekdayTravel.Charge + s.SaturdayTravel.Charge + s.SundayTravel.Charge
	return s
}

// weekdayOf returns the calendar weekday of an ISO date string. Unparseable
// dates classify as a weekday (Monday) rather than failing; the calculator
// never raises.
func weekdayOf(date string) time.Weekday {
	d, ok := ParseISODate(date)
	if !ok {
		return time.Monday
	}
	return d.Weekday()
}
