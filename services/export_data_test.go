package services

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleReport() *ExtractedReport {
	return &ExtractedReport{
		SRNumber: "SR-1001",
		Customer: CustomerInfo{Company: "Acme Co", Contact: "Pat Jones"},
		TimeEntries: []TimeEntry{
			{
				Date:        "2024-09-16",
				Onsite:      TimeSpan{Active: true, Start: "7:00", End: "17:00"},
				ServiceWork: "Replaced bearing",
			},
			{
				Date:   "2024-09-17",
				Onsite: TimeSpan{Active: true, Start: "8:00", End: "12:00"},
			},
		},
		Charges: Charges{PerDiemDays: "2", PerDiemRate: "75", AutoRental: "180.50"},
		TravelItinerary: []TravelLeg{
			{Date: "2024-09-16", DepartTime: "6:00", DepartLocation: "Minneapolis"},
		},
	}
}

func TestBuildExportDocument_RequiredKeys(t *testing.T) {
	doc := BuildExportDocument(sampleReport(), nil, DefaultRates())

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// The time-sheet application import depends on this exact key set.
	for _, key := range []string{
		"customerInfo", "entries", "serviceReportData",
		"travelData", "machineInfo", "invoiceInfo",
	} {
		if _, ok := top[key]; !ok {
			t.Errorf("export document missing required key %q", key)
		}
	}
}

func TestBuildExportDocument_Narratives(t *testing.T) {
	doc := BuildExportDocument(sampleReport(), nil, DefaultRates())

	if got := doc.ServiceReportData["2024-09-16"]; got != "Replaced bearing" {
		t.Errorf("serviceReportData[2024-09-16] = %q", got)
	}
	if _, ok := doc.ServiceReportData["2024-09-17"]; ok {
		t.Error("entries without narrative should stay out of serviceReportData")
	}
	if len(doc.Entries) != 2 {
		t.Errorf("entries = %d, want both kept in the list", len(doc.Entries))
	}
}

func TestBuildExportDocument_Charges(t *testing.T) {
	doc := BuildExportDocument(sampleReport(), nil, DefaultRates())

	// 2024-09-16 is a Monday with 10 onsite hours: 8 straight + 2 OT.
	// 2024-09-17 adds 4 straight.
	c := doc.InvoiceInfo.Charges
	if !almostEqual(c.Straight.Hours, 12) || !almostEqual(c.Overtime.Hours, 2) {
		t.Errorf("hours = (%v straight, %v overtime), want (12, 2)", c.Straight.Hours, c.Overtime.Hours)
	}
	if doc.InvoiceInfo.AutoRental != "180.50" {
		t.Errorf("autoRental = %q, want pass-through of the source value", doc.InvoiceInfo.AutoRental)
	}
}

func TestBuildExportDocument_EmptyCollectionsStayArrays(t *testing.T) {
	doc := BuildExportDocument(&ExtractedReport{}, nil, DefaultRates())

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, snippet := range []string{`"entries":[]`, `"travelData":[]`, `"machineInfo":[]`} {
		if !strings.Contains(string(raw), snippet) {
			t.Errorf("document should keep %s as an empty array", snippet)
		}
	}
}
