package services

import (
	"errors"
	"math"
	"testing"
)

func reportGrid(cells map[string]string) MapGrid {
	return MapGrid{DefaultSheetName: cells}
}

func TestExtractFromGrid_PunchDay(t *testing.T) {
	grid := reportGrid(map[string]string{
		"F4":  "SR-1001",
		"B6":  "Acme Co",
		"A41": "44927",
		"B41": "7:00",
		"C41": "12:00",
		"D41": "12:30",
		"E41": "16:00",
		"K41": "Replaced spindle bearing",
	})

	report, err := ExtractFromGrid(grid, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractFromGrid() error = %v", err)
	}

	if report.Customer.Company != "Acme Co" {
		t.Errorf("company = %q, want Acme Co", report.Customer.Company)
	}
	if report.SRNumber != "SR-1001" {
		t.Errorf("srNumber = %q, want SR-1001", report.SRNumber)
	}
	if len(report.TimeEntries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(report.TimeEntries))
	}

	entry := report.TimeEntries[0]
	if entry.Date != "2023-01-01" {
		t.Errorf("date = %q, want 2023-01-01", entry.Date)
	}
	if !entry.Lunch || math.Abs(entry.LunchDuration-0.5) > 1e-9 {
		t.Errorf("lunch = (%v, %v), want (true, 0.5)", entry.Lunch, entry.LunchDuration)
	}
	if entry.Onsite.Start != "7:00" || entry.Onsite.End != "16:00" {
		t.Errorf("onsite = %s-%s, want 7:00-16:00", entry.Onsite.Start, entry.Onsite.End)
	}
	if entry.ServiceWork != "Replaced spindle bearing" {
		t.Errorf("serviceWork = %q", entry.ServiceWork)
	}

	h := CalcEntryHours(entry)
	if math.Abs(h.Work-8.5) > 1e-9 {
		t.Errorf("work hours = %v, want 8.5 (9h onsite minus 0.5h lunch)", h.Work)
	}
}

func TestExtractFromGrid_MissingSheet(t *testing.T) {
	grid := MapGrid{"Totally Different Tab": {}}

	report, err := ExtractFromGrid(grid, ExtractOptions{})
	if report != nil {
		t.Error("expected no partial report on missing sheet")
	}
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.Artifact != DefaultSheetName {
		t.Errorf("artifact = %q, want %q", formatErr.Artifact, DefaultSheetName)
	}
}

func TestExtractFromGrid_SheetOverride(t *testing.T) {
	grid := MapGrid{"Week 12": {"B6": "Acme Co"}}

	report, err := ExtractFromGrid(grid, ExtractOptions{Sheet: "Week 12"})
	if err != nil {
		t.Fatalf("ExtractFromGrid() error = %v", err)
	}
	if report.Customer.Company != "Acme Co" {
		t.Errorf("company = %q, want Acme Co", report.Customer.Company)
	}
}

func TestExtractFromGrid_EmptyRowsSkipped(t *testing.T) {
	grid := reportGrid(map[string]string{
		"A41": "44927", // date but no punches
		"A42": "44928",
		"B42": "8:00",
	})

	report, err := ExtractFromGrid(grid, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractFromGrid() error = %v", err)
	}
	if len(report.TimeEntries) != 1 {
		t.Fatalf("expected only the punched day, got %d entries", len(report.TimeEntries))
	}
	if report.TimeEntries[0].Date != "2023-01-02" {
		t.Errorf("date = %q, want 2023-01-02", report.TimeEntries[0].Date)
	}
}

func TestExtractFromGrid_FractionalTimes(t *testing.T) {
	grid := reportGrid(map[string]string{
		"A41": "44928",
		"B41": "0.5",               // 12:00
		"E41": "0.708333333333333", // 17:00
	})

	report, err := ExtractFromGrid(grid, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractFromGrid() error = %v", err)
	}
	entry := report.TimeEntries[0]
	if entry.Onsite.Start != "12:00" || entry.Onsite.End != "17:00" {
		t.Errorf("onsite = %s-%s, want 12:00-17:00", entry.Onsite.Start, entry.Onsite.End)
	}
}

func TestExtractFromGrid_PunchFallbacks(t *testing.T) {
	// punch4 missing: the day ends at punch2.
	grid := reportGrid(map[string]string{
		"A41": "44928",
		"B41": "7:00",
		"C41": "13:00",
	})

	report, err := ExtractFromGrid(grid, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractFromGrid() error = %v", err)
	}
	entry := report.TimeEntries[0]
	if entry.Onsite.Start != "7:00" || entry.Onsite.End != "13:00" {
		t.Errorf("onsite = %s-%s, want 7:00-13:00", entry.Onsite.Start, entry.Onsite.End)
	}
	if entry.Lunch {
		t.Error("lunch should not derive from a single midday punch")
	}
}

func TestExtractFromGrid_TravelItinerary(t *testing.T) {
	grid := MapGrid{
		DefaultSheetName: {
			"A41": "44928", // Monday 2023-01-02, outbound day
			"B41": "10:00",
			"C41": "12:00",
			"D41": "12:30",
			"E41": "17:00",
			"A42": "44931", // Thursday 2023-01-05, homebound day
			"B42": "7:00",
			"E42": "15:00",
		},
		itinerarySheetName: {
			"A2": "44928", "B2": "6:00", "C2": "CST", "D2": "Minneapolis",
			"E2": "9:30", "F2": "EST", "G2": "Columbus",
			"A3": "44931", "B3": "16:00", "C3": "EST", "D3": "Columbus",
			"E3": "17:45", "F3": "CST", "G3": "Minneapolis",
		},
	}

	report, err := ExtractFromGrid(grid, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractFromGrid() error = %v", err)
	}
	if len(report.TravelItinerary) != 2 {
		t.Fatalf("expected 2 itinerary legs, got %d", len(report.TravelItinerary))
	}
	if len(report.TimeEntries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(report.TimeEntries))
	}

	outbound := report.TimeEntries[0]
	if !outbound.TravelTo.Active || outbound.TravelTo.Start != "6:00" || outbound.TravelTo.End != "9:30" {
		t.Errorf("outbound travelTo = %+v", outbound.TravelTo)
	}
	if outbound.Onsite.Start != "9:30" {
		t.Errorf("outbound onsite starts %q, want the arrival time 9:30", outbound.Onsite.Start)
	}
	if outbound.Lunch || outbound.LunchDuration != 0 {
		t.Error("lunch must be suppressed on a travel-to day")
	}

	homebound := report.TimeEntries[1]
	if !homebound.TravelHome.Active || homebound.TravelHome.Start != "16:00" {
		t.Errorf("homebound travelHome = %+v", homebound.TravelHome)
	}
	if homebound.Onsite.End != "16:00" {
		t.Errorf("homebound onsite ends %q, want the departure time 16:00", homebound.Onsite.End)
	}
}

func TestExtractFromGrid_ChargesDefaultEmpty(t *testing.T) {
	grid := reportGrid(map[string]string{"B6": "Acme Co"})

	report, err := ExtractFromGrid(grid, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractFromGrid() error = %v", err)
	}
	// Unmatched numeric fields stay empty strings, not zeros, so the UI
	// can tell "not found" from "zero".
	if report.Charges.StraightHours != "" || report.Charges.AutoRental != "" {
		t.Errorf("charges should default empty, got %+v", report.Charges)
	}
}
