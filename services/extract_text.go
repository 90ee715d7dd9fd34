package services

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Section headers that anchor each text template. The header of the chosen
// variant is the only hard requirement; every field below it may miss.
const (
	headerTextA = "SERVICE REPORT"
	headerTextB = "FIELD SERVICE REPORT"
)

// baseTextRules is the variant-A rule table. Variant B shares it and
// overrides only the labels its later template renamed.
func baseTextRules() RuleSet {
	rules := []Rule{
		rule("srNumber", 1,
			`SR\s*#\s*:?\s*([A-Z0-9][A-Z0-9-]*)`,
			`Service\s+Request\s*:?\s*([A-Z0-9][A-Z0-9-]*)`,
			`S/R\s+No\.?\s*:?\s*([A-Z0-9][A-Z0-9-]*)`),
		rule("company", 1,
			`(?m)^Company\s*:?\s+(.+)$`,
			`(?m)^Customer\s*:?\s+(.+)$`),
		rule("contact", 1,
			`(?m)^Contact\s*:?\s+(.+)$`,
			`(?m)^Attn\s*:?\s+(.+)$`),
		rule("title", 1, `(?m)^Title\s*:?\s+(.+)$`),
		rule("address", 1, `(?m)^Address\s*:?\s+(.+)$`),
		rule("cityState", 1,
			`(?m)^City\s*/\s*State\s*:?\s+(.+)$`,
			`(?m)^Location\s*:?\s+(.+)$`),
		rule("purpose", 1,
			`(?m)^Purpose(?:\s+of\s+Visit)?\s*:?\s+(.+)$`),
		rule("reportDate", 1,
			`(?m)^Date\s*:?\s+(\d{1,2}/\d{1,2}/\d{2,4})`),
		rule("straightHours", 1, `Straight\s+Time(?:\s+Hours)?\s*:?\s+(\d+(?:\.\d+)?)`),
		rule("overtimeHours", 1, `Overtime(?:\s+Hours)?\s*:?\s+(\d+(?:\.\d+)?)`),
		rule("weekdayTravelHours", 1, `(?:Weekday\s+)?Travel\s+Hours\s*:?\s+(\d+(?:\.\d+)?)`),
		rule("perDiemDays", 1, `Per\s+Diem\s+Days\s*:?\s+(\d+(?:\.\d+)?)`),
		rule("perDiemRate", 1, `Per\s+Diem\s+Rate\s*:?\s+\$?(\d+(?:\.\d+)?)`),
		rule("autoRental", 1, `Auto\s+Rental\s*:?\s+\$?(\d+(?:\.\d+)?)`),
		rule("airTransport", 1, `Air\s+(?:Transport|Fare)\s*:?\s+\$?(\d+(?:\.\d+)?)`),
	}
	rs := make(RuleSet, len(rules))
	for _, r := range rules {
		rs[r.Name] = r
	}
	return rs
}

// variantBOverrides reflects the relabeled fields of the later template.
func variantBOverrides() []Rule {
	return []Rule{
		rule("srNumber", 1,
			`Report\s+No\.?\s*:?\s*([A-Z0-9][A-Z0-9-]*)`,
			`SR\s*#\s*:?\s*([A-Z0-9][A-Z0-9-]*)`,
			`Service\s+Request\s*:?\s*([A-Z0-9][A-Z0-9-]*)`),
		rule("company", 1,
			`(?m)^Customer\s+Name\s*:?\s+(.+)$`,
			`(?m)^Company\s*:?\s+(.+)$`),
		rule("purpose", 1,
			`(?m)^Reason\s+for\s+Visit\s*:?\s+(.+)$`,
			`(?m)^Purpose\s*:?\s+(.+)$`),
		rule("straightHours", 1, `ST\s+Hours\s*:?\s+(\d+(?:\.\d+)?)`),
		rule("overtimeHours", 1, `OT\s+Hours\s*:?\s+(\d+(?:\.\d+)?)`),
	}
}

var (
	// Weekday punch rows: abbreviation, date token, then punches/totals.
	punchRowPattern = regexp.MustCompile(`(?m)^(Mon|Tue|Wed|Thu|Fri|Sat|Sun)[a-z]*\.?\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\s+(.*)$`)

	// Per-day narratives: full weekday name, date token, dash, free text.
	narrativePattern = regexp.MustCompile(`(?m)^(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s+(\d{1,2}/\d{1,2})\s*-\s*(.+)$`)

	// Itinerary legs: date, departure time/zone/location, dash, arrival.
	itineraryLegPattern = regexp.MustCompile(`(?m)^(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\s+(\d{1,2}:\d{2})\s+([A-Z]{2,4})\s+(.+?)\s+-\s+(\d{1,2}:\d{2})\s+([A-Z]{2,4})\s+(.+)$`)

	clockToken   = regexp.MustCompile(`\d{1,2}:\d{2}`)
	numericToken = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ExtractFromText runs a text variant against one page of extracted text.
// The fragment list is only reported in diagnostics; parsing works off the
// concatenated page text alone.
func ExtractFromText(pageText string, fragments []TextFragment, variant Variant, opts ExtractOptions) (*ExtractedReport, error) {
	var rules RuleSet
	var header string
	switch variant {
	case VariantTextA:
		rules = baseTextRules()
		header = headerTextA
	case VariantTextB:
		rules = baseTextRules().withOverrides(variantBOverrides())
		header = headerTextB
	default:
		return nil, &FormatError{Artifact: string(variant)}
	}

	if !strings.Contains(strings.ToUpper(pageText), header) {
		return nil, &FormatError{Artifact: header}
	}
	if len(fragments) > 0 {
		log.Printf("extract: %s page with %d text fragments", variant, len(fragments))
	}

	find := func(name string) string {
		v, _ := rules.Find(name, pageText)
		return v
	}

	report := &ExtractedReport{
		SRNumber: find("srNumber"),
		Customer: CustomerInfo{
			Company:   find("company"),
			Contact:   find("contact"),
			Title:     find("title"),
			Address:   find("address"),
			CityState: find("cityState"),
			Purpose:   find("purpose"),
		},
		Charges: Charges{
			StraightHours:      find("straightHours"),
			OvertimeHours:      find("overtimeHours"),
			WeekdayTravelHours: find("weekdayTravelHours"),
			PerDiemDays:        find("perDiemDays"),
			PerDiemRate:        find("perDiemRate"),
			AutoRental:         find("autoRental"),
			AirTransport:       find("airTransport"),
		},
	}

	year := opts.Year
	if year == 0 {
		year = yearFromReportDate(find("reportDate"))
	}

	report.TravelItinerary = itineraryFromText(pageText, year)
	narratives := narrativesFromText(pageText)

	for _, m := range punchRowPattern.FindAllStringSubmatch(pageText, -1) {
		date, ok := parseMonthDay(m[2], year)
		if !ok {
			continue
		}
		row := timeRow{date: date}
		for i, tok := range clockToken.FindAllString(m[3], 4) {
			if minutes, ok := ParseClock(tok); ok {
				row.punches[i] = FormatClock(minutes)
			}
		}
		rest := clockToken.ReplaceAllString(m[3], " ")
		for i, tok := range numericToken.FindAllString(rest, 5) {
			row.totals[i] = tok
		}
		if entry, ok := buildEntry(row, report.TravelItinerary, opts.homeBase(), narratives); ok {
			report.TimeEntries = append(report.TimeEntries, entry)
		}
	}

	return report, nil
}

func narrativesFromText(pageText string) map[string]string {
	out := make(map[string]string)
	for _, m := range narrativePattern.FindAllStringSubmatch(pageText, -1) {
		out[m[1]] = strings.TrimSpace(m[2])
	}
	return out
}

func itineraryFromText(pageText string, year int) []TravelLeg {
	var legs []TravelLeg
	for _, m := range itineraryLegPattern.FindAllStringSubmatch(pageText, -1) {
		date, ok := parseMonthDay(m[1], year)
		if !ok {
			continue
		}
		legs = append(legs, TravelLeg{
			Date:           FormatISODate(date),
			DepartTime:     m[2],
			DepartZone:     m[3],
			DepartLocation: strings.TrimSpace(m[4]),
			ArriveTime:     m[5],
			ArriveZone:     m[6],
			ArriveLocation: strings.TrimSpace(m[7]),
		})
	}
	return legs
}

// parseMonthDay resolves an "M/D" or "M/D/YY[YY]" token against the report
// year. Malformed tokens report false and the row is dropped.
func parseMonthDay(token string, year int) (time.Time, bool) {
	parts := strings.Split(token, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if len(parts) == 3 {
		y, err := strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, false
		}
		if y < 100 {
			y += 2000
		}
		year = y
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func yearFromReportDate(reportDate string) int {
	if d, ok := parseMonthDay(reportDate, 0); ok && d.Year() != 0 {
		return d.Year()
	}
	return time.Now().Year()
}
