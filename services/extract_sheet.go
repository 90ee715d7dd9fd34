package services

import "fmt"

// DefaultSheetName is the tab the workbook template keeps the report on.
const DefaultSheetName = "Service Report"

// itinerarySheetName is the optional travel tab; its absence is not an error.
const itinerarySheetName = "Travel Itinerary"

// Fixed cell addresses of the workbook template. Extraction from the
// spreadsheet variant is purely positional: one field, one cell.
var sheetFieldCells = map[string]string{
	"srNumber":           "F4",
	"company":            "B6",
	"contact":            "B7",
	"title":              "B8",
	"address":            "B9",
	"cityState":          "B10",
	"purpose":            "B11",
	"straightHours":      "C50",
	"overtimeHours":      "C51",
	"weekdayTravelHours": "C52",
	"perDiemDays":        "C53",
	"perDiemRate":        "C54",
	"autoRental":         "C55",
	"airTransport":       "C56",
}

// Punch rows: one row per weekday, Monday first, date serial in column A,
// punches in B..E, daily totals in F..J.
const (
	punchRowFirst = 41
	punchRowCount = 7
)

var punchCols = [4]string{"B", "C", "D", "E"}
var totalCols = [5]string{"F", "G", "H", "I", "J"}

// ExtractFromGrid runs the spreadsheet variant against a cell grid.
// A missing report sheet is fatal; individual empty or unparseable cells
// default silently per field.
func ExtractFromGrid(grid CellGrid, opts ExtractOptions) (*ExtractedReport, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if !grid.HasSheet(sheet) {
		return nil, &FormatError{Artifact: sheet}
	}

	cell := func(ref string) string {
		v, _ := grid.Cell(sheet, ref)
		return v
	}
	field := func(name string) string {
		return cell(sheetFieldCells[name])
	}

	report := &ExtractedReport{
		SRNumber: field("srNumber"),
		Customer: CustomerInfo{
			Company:   field("company"),
			Contact:   field("contact"),
			Title:     field("title"),
			Address:   field("address"),
			CityState: field("cityState"),
			Purpose:   field("purpose"),
		},
		Charges: Charges{
			StraightHours:      field("straightHours"),
			OvertimeHours:      field("overtimeHours"),
			WeekdayTravelHours: field("weekdayTravelHours"),
			PerDiemDays:        field("perDiemDays"),
			PerDiemRate:        field("perDiemRate"),
			AutoRental:         field("autoRental"),
			AirTransport:       field("airTransport"),
		},
	}

	report.TravelItinerary = itineraryFromGrid(grid)

	for i := 0; i < punchRowCount; i++ {
		rowNum := punchRowFirst + i
		serial, ok := cellFloat(cell(fmt.Sprintf("A%d", rowNum)))
		if !ok {
			continue // no date, nothing to anchor the row to
		}
		row := timeRow{date: DateFromSerial(int(serial))}
		for p, col := range punchCols {
			if clock, ok := cellClock(cell(fmt.Sprintf("%s%d", col, rowNum))); ok {
				row.punches[p] = clock
			}
		}
		for t, col := range totalCols {
			row.totals[t] = cell(fmt.Sprintf("%s%d", col, rowNum))
		}
		if entry, ok := buildEntry(row, report.TravelItinerary, opts.homeBase(), nil); ok {
			// The workbook keeps the day's narrative on the row itself.
			entry.ServiceWork = cell(fmt.Sprintf("K%d", rowNum))
			report.TimeEntries = append(report.TimeEntries, entry)
		}
	}

	return report, nil
}

// itineraryFromGrid reads the optional travel tab. Legs live one per row
// starting at row 2; a row without a decodable date serial ends the table.
func itineraryFromGrid(grid CellGrid) []TravelLeg {
	if !grid.HasSheet(itinerarySheetName) {
		return nil
	}
	var legs []TravelLeg
	for rowNum := 2; ; rowNum++ {
		cell := func(col string) string {
			v, _ := grid.Cell(itinerarySheetName, fmt.Sprintf("%s%d", col, rowNum))
			return v
		}
		serial, ok := cellFloat(cell("A"))
		if !ok {
			return legs
		}
		leg := TravelLeg{
			Date:           FormatISODate(DateFromSerial(int(serial))),
			DepartZone:     cell("C"),
			DepartLocation: cell("D"),
			ArriveZone:     cell("F"),
			ArriveLocation: cell("G"),
		}
		if clock, ok := cellClock(cell("B")); ok {
			leg.DepartTime = clock
		}
		if clock, ok := cellClock(cell("E")); ok {
			leg.ArriveTime = clock
		}
		legs = append(legs, leg)
	}
}
