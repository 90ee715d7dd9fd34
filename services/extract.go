package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// Variant names one extraction ruleset matched to a source document
// template. The caller selects the variant; nothing is auto-detected.
type Variant string

const (
	VariantSpreadsheet Variant = "spreadsheet"
	VariantTextA       Variant = "text-variant-A"
	VariantTextB       Variant = "text-variant-B"
)

// ParseVariant validates a caller-supplied variant name.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantSpreadsheet, VariantTextA, VariantTextB:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown format variant %q", s)
}

// FormatError reports a required sheet or section missing from the source.
// It aborts the whole extraction; individual field misses never raise it.
type FormatError struct {
	Artifact string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("required section %q not found in source document", e.Artifact)
}

// TextFragment is one positional text run from the source page. The
// fragment list is used only for diagnostics; correctness depends solely
// on the concatenated page text.
type TextFragment struct {
	Text string `json:"text"`
}

// CellGrid supplies spreadsheet input as a named-sheet, cell-address to
// value mapping. Addresses are column-letter plus row-number ("B6").
type CellGrid interface {
	// Cell returns the raw value at ref on the named sheet. The second
	// return is false when the sheet itself does not exist.
	Cell(sheet, ref string) (string, bool)
	// HasSheet reports whether the named sheet exists.
	HasSheet(sheet string) bool
}

// MapGrid is an in-memory CellGrid, mainly for manual input and tests.
type MapGrid map[string]map[string]string

func (g MapGrid) HasSheet(sheet string) bool {
	_, ok := g[sheet]
	return ok
}

func (g MapGrid) Cell(sheet, ref string) (string, bool) {
	cells, ok := g[sheet]
	if !ok {
		return "", false
	}
	return cells[ref], true
}

// xlsxGrid adapts an excelize workbook to the CellGrid interface. Values
// are read raw (unformatted) so date serials and fractional-day times keep
// their numeric encodings.
type xlsxGrid struct {
	f      *excelize.File
	sheets map[string]bool
}

// GridFromXLSX reads a whole workbook into a CellGrid.
func GridFromXLSX(r io.Reader) (CellGrid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	sheets := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		sheets[name] = true
	}
	return &xlsxGrid{f: f, sheets: sheets}, nil
}

func (g *xlsxGrid) HasSheet(sheet string) bool {
	return g.sheets[sheet]
}

func (g *xlsxGrid) Cell(sheet, ref string) (string, bool) {
	if !g.sheets[sheet] {
		return "", false
	}
	v, err := g.f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", true
	}
	return strings.TrimSpace(v), true
}

// ExtractOptions carries caller-selected extraction parameters.
type ExtractOptions struct {
	// Sheet overrides the default sheet name for the spreadsheet variant.
	Sheet string
	// HomeBase is the location whose departure legs classify as
	// travel-to-site. Defaults to DefaultHomeBase.
	HomeBase string
	// Year resolves M/D tokens in text sources that omit the year.
	// Zero means "take it from the report-date field, then today".
	Year int
}

// DefaultHomeBase is the registered origin of the service team. Departures
// from here classify an itinerary leg as travel to site.
const DefaultHomeBase = "Minneapolis"

func (o ExtractOptions) homeBase() string {
	if o.HomeBase != "" {
		return o.HomeBase
	}
	return DefaultHomeBase
}

// cellFloat coerces a raw cell value to float64.
func cellFloat(v string) (float64, bool) {
	if v == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// cellClock normalizes a raw cell value to a clock string. Numeric values
// are treated as fractional days; anything else must already look like a
// time of day. Unparseable values report false (treated as field-not-found).
func cellClock(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	if minutes, ok := ParseClock(v); ok {
		return FormatClock(minutes), true
	}
	if f, ok := cellFloat(v); ok && f >= 0 && f < 1 {
		return ClockFromFraction(f), true
	}
	return "", false
}
