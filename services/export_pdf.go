package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateReportPDF renders an export document as a paginated service
// report using maroto/v2: header, customer block, one table per section
// (time entries, travel itinerary, charges). Returns the raw PDF bytes.
func GenerateReportPDF(doc ExportDocument, generatedDate string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, doc)
	addCustomerBlock(m, doc.CustomerInfo)
	addEntriesTable(m, doc.Entries)
	if len(doc.TravelData) > 0 {
		addItineraryTable(m, doc.TravelData)
	}
	addChargesTable(m, doc.InvoiceInfo)
	addGeneratedFooter(m, generatedDate)

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdf.GetBytes(), nil
}

func addReportHeader(m core.Maroto, doc ExportDocument) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Field Service Report", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("SR # %s", doc.SRNumber), props.Text{
					Size:  10,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func addCustomerBlock(m core.Maroto, c CustomerInfo) {
	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 8, Align: align.Left}

	line := func(name, v string) core.Row {
		return row.New(5).Add(
			col.New(3).Add(text.New(name, label)),
			col.New(9).Add(text.New(v, value)),
		)
	}

	m.AddRows(
		line("Company", c.Company),
		line("Contact", c.Contact),
		line("Title", c.Title),
		line("Address", c.Address),
		line("City/State", c.CityState),
		line("Purpose", c.Purpose),
	)
	m.AddRows(row.New(4))
}

func sectionHeader(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)
}

var tableHeaderBg = &props.Color{Red: 33, Green: 37, Blue: 41}

func tableHeaderRow(cells []string, widths []int) core.Row {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: tableHeaderBg}
	cols := make([]core.Col, len(cells))
	for i, c := range cells {
		cols[i] = col.New(widths[i]).Add(text.New(c, headerText)).WithStyle(&headerCell)
	}
	return row.New(7).Add(cols...)
}

func addEntriesTable(m core.Maroto, entries []TimeEntry) {
	sectionHeader(m, "Time Entries")
	m.AddRows(tableHeaderRow(
		[]string{"Date", "Travel To", "Onsite", "Travel Home", "Lunch", "Hours", "Work Performed"},
		[]int{2, 1, 2, 1, 1, 1, 4},
	))

	cellText := props.Text{Size: 7, Align: align.Center}
	leftText := props.Text{Size: 7, Align: align.Left}

	span := func(s TimeSpan) string {
		if !s.Active {
			return "-"
		}
		return s.Start + "-" + s.End
	}

	for _, e := range entries {
		h := CalcEntryHours(e)
		lunch := "-"
		if e.Lunch {
			lunch = fmt.Sprintf("%.2f", e.LunchDuration)
		}
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New(e.Date, cellText)),
				col.New(1).Add(text.New(span(e.TravelTo), cellText)),
				col.New(2).Add(text.New(span(e.Onsite), cellText)),
				col.New(1).Add(text.New(span(e.TravelHome), cellText)),
				col.New(1).Add(text.New(lunch, cellText)),
				col.New(1).Add(text.New(fmt.Sprintf("%.2f", h.Total), cellText)),
				col.New(4).Add(text.New(e.ServiceWork, leftText)),
			),
		)
	}
	m.AddRows(row.New(4))
}

func addItineraryTable(m core.Maroto, legs []TravelLeg) {
	sectionHeader(m, "Travel Itinerary")
	m.AddRows(tableHeaderRow(
		[]string{"Date", "Depart", "From", "Arrive", "To"},
		[]int{2, 2, 3, 2, 3},
	))

	cellText := props.Text{Size: 7, Align: align.Center}
	leftText := props.Text{Size: 7, Align: align.Left}

	for _, leg := range legs {
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New(leg.Date, cellText)),
				col.New(2).Add(text.New(leg.DepartTime+" "+leg.DepartZone, cellText)),
				col.New(3).Add(text.New(leg.DepartLocation, leftText)),
				col.New(2).Add(text.New(leg.ArriveTime+" "+leg.ArriveZone, cellText)),
				col.New(3).Add(text.New(leg.ArriveLocation, leftText)),
			),
		)
	}
	m.AddRows(row.New(4))
}

func addChargesTable(m core.Maroto, inv InvoiceInfo) {
	sectionHeader(m, "Charges")
	m.AddRows(tableHeaderRow(
		[]string{"Category", "Hours", "Rate", "Charge"},
		[]int{5, 2, 2, 3},
	))

	cellText := props.Text{Size: 8, Align: align.Right}
	leftText := props.Text{Size: 8, Align: align.Left}

	line := func(name string, b ChargeBucket) core.Row {
		return row.New(6).Add(
			col.New(5).Add(text.New(name, leftText)),
			col.New(2).Add(text.New(fmt.Sprintf("%.2f", b.Hours), cellText)),
			col.New(2).Add(text.New(fmt.Sprintf("$%.2f", b.Rate), cellText)),
			col.New(3).Add(text.New(fmt.Sprintf("$%.2f", b.Charge), cellText)),
		)
	}

	c := inv.Charges
	m.AddRows(
		line("Straight Time", c.Straight),
		line("Overtime", c.Overtime),
		line("Double Time", c.Double),
		line("Weekday Travel", c.WeekdayTravel),
		line("Saturday Travel", c.SaturdayTravel),
		line("Sunday/Holiday Travel", c.SundayTravel),
	)

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	boldRight := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	subtotal := func(label string, amount float64) core.Row {
		return row.New(7).Add(
			col.New(9).Add(text.New(label, boldRight)).WithStyle(summaryCell),
			col.New(3).Add(text.New(fmt.Sprintf("$%.2f", amount), boldRight)).WithStyle(summaryCell),
		)
	}

	m.AddRows(
		subtotal("Labor Subtotal", c.LaborSubtotal),
		subtotal("Travel Charges Subtotal", c.TravelChargesSubtotal),
	)
}

func addGeneratedFooter(m core.Maroto, generatedDate string) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", generatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
