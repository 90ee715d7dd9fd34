package services

import (
	"encoding/json"
	"fmt"
)

// MachineInfo describes one serviced machine attached to a report. The
// head status is normalized to the current multi-issue shape on decode.
type MachineInfo struct {
	Model        string     `json:"model"`
	SerialNumber string     `json:"serialNumber"`
	HeadStatus   HeadStatus `json:"headStatus"`
}

// UnmarshalJSON upgrades legacy single-issue head statuses at the model
// boundary so nothing downstream ever sees the old shape.
func (m *MachineInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Model        string          `json:"model"`
		SerialNumber string          `json:"serialNumber"`
		HeadStatus   json.RawMessage `json:"headStatus"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	head, err := NormalizeHeadStatus(raw.HeadStatus)
	if err != nil {
		return fmt.Errorf("machine %s: %w", raw.SerialNumber, err)
	}
	m.Model = raw.Model
	m.SerialNumber = raw.SerialNumber
	m.HeadStatus = head
	return nil
}

// InvoiceInfo carries the priced charge summary plus the pass-through
// expense fields lifted from the source document.
type InvoiceInfo struct {
	Charges      ChargeSummary `json:"charges"`
	PerDiemDays  string        `json:"perDiemDays"`
	PerDiemRate  string        `json:"perDiemRate"`
	AutoRental   string        `json:"autoRental"`
	AirTransport string        `json:"airTransport"`
}

// ExportDocument is the flat JSON artifact the time-sheet application
// imports. The top-level key set is part of the interchange contract.
type ExportDocument struct {
	CustomerInfo      CustomerInfo      `json:"customerInfo"`
	Entries           []TimeEntry       `json:"entries"`
	ServiceReportData map[string]string `json:"serviceReportData"`
	TravelData        []TravelLeg       `json:"travelData"`
	MachineInfo       []MachineInfo     `json:"machineInfo"`
	InvoiceInfo       InvoiceInfo       `json:"invoiceInfo"`
	SRNumber          string            `json:"srNumber"`
}

// BuildExportDocument assembles the interchange document from an extracted
// report. serviceReportData maps each entry date to its narrative; entries
// without narrative text are omitted from the map but kept in the list.
func BuildExportDocument(r *ExtractedReport, machines []MachineInfo, rates RateTable) ExportDocument {
	narratives := make(map[string]string)
	for _, e := range r.TimeEntries {
		if e.ServiceWork != "" {
			narratives[e.Date] = e.ServiceWork
		}
	}
	doc := ExportDocument{
		CustomerInfo:      r.Customer,
		Entries:           r.TimeEntries,
		ServiceReportData: narratives,
		TravelData:        r.TravelItinerary,
		MachineInfo:       machines,
		SRNumber:          r.SRNumber,
		InvoiceInfo: InvoiceInfo{
			Charges:      CalcCharges(r.TimeEntries, rates),
			PerDiemDays:  r.Charges.PerDiemDays,
			PerDiemRate:  r.Charges.PerDiemRate,
			AutoRental:   r.Charges.AutoRental,
			AirTransport: r.Charges.AirTransport,
		},
	}
	if doc.Entries == nil {
		doc.Entries = []TimeEntry{}
	}
	if doc.TravelData == nil {
		doc.TravelData = []TravelLeg{}
	}
	if doc.MachineInfo == nil {
		doc.MachineInfo = []MachineInfo{}
	}
	return doc
}
