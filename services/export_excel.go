package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateTimesheetExcel writes an export document as a time-sheet workbook
// and returns the file contents. The layout mirrors the report template:
// customer block up top, one punch row per entry, charge summary below.
func GenerateTimesheetExcel(doc ExportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Time Sheet"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1]

	widths := []float64{12, 12, 12, 12, 8, 10, 8, 40}
	for i, colRef := range columns {
		if err := f.SetColWidth(sheetName, colRef, colRef, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", colRef, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header block ────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Field Service Time Sheet")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if doc.SRNumber != "" {
		f.SetCellValue(sheetName, "A2", "SR #: "+sanitizeExcelCell(doc.SRNumber))
	}
	f.SetCellValue(sheetName, "A3", "Company:")
	f.SetCellValue(sheetName, "B3", sanitizeExcelCell(doc.CustomerInfo.Company))
	f.SetCellValue(sheetName, "A4", "Contact:")
	f.SetCellValue(sheetName, "B4", sanitizeExcelCell(doc.CustomerInfo.Contact))
	f.SetCellValue(sheetName, "A5", "Purpose:")
	f.SetCellValue(sheetName, "B5", sanitizeExcelCell(doc.CustomerInfo.Purpose))

	// ── Entry rows ──────────────────────────────────────────────────────

	headers := []string{"Date", "Travel To", "Onsite", "Travel Home", "Lunch", "Hours", "Tier", "Work Performed"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s7", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A7", lastCol+"7", headerStyle)

	span := func(s TimeSpan) string {
		if !s.Active {
			return ""
		}
		return s.Start + "-" + s.End
	}

	rowNum := 8
	for _, e := range doc.Entries {
		h := CalcEntryHours(e)
		rowStr := fmt.Sprintf("%d", rowNum)

		f.SetCellValue(sheetName, "A"+rowStr, e.Date)
		f.SetCellValue(sheetName, "B"+rowStr, span(e.TravelTo))
		f.SetCellValue(sheetName, "C"+rowStr, span(e.Onsite))
		f.SetCellValue(sheetName, "D"+rowStr, span(e.TravelHome))
		if e.Lunch {
			f.SetCellValue(sheetName, "E"+rowStr, e.LunchDuration)
		}
		f.SetCellValue(sheetName, "F"+rowStr, h.Total)
		f.SetCellValue(sheetName, "G"+rowStr, tierLabel(e, h))
		f.SetCellValue(sheetName, "H"+rowStr, sanitizeExcelCell(e.ServiceWork))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, cellStyle)
		rowNum++
	}

	// ── Charge summary ──────────────────────────────────────────────────

	rowNum++
	c := doc.InvoiceInfo.Charges
	summary := []struct {
		label  string
		amount float64
	}{
		{"Labor Subtotal:", c.LaborSubtotal},
		{"Travel Charges Subtotal:", c.TravelChargesSubtotal},
	}
	for _, s := range summary {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "E"+rowStr, s.label)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "F"+rowStr, s.amount)
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, summaryValueStyle)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// tierLabel names the dominant pay tier of one entry for display.
func tierLabel(e TimeEntry, h EntryHours) string {
	switch {
	case e.TravelOnly:
		return "travel"
	case h.Double > 0:
		return "double"
	case h.Overtime > 0 && h.Straight > 0:
		return "straight+OT"
	case h.Overtime > 0:
		return "overtime"
	default:
		return "straight"
	}
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
