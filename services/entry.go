// Package services implements the service-report extraction pipeline and the
// hours/charge calculator shared by the importer and the time-sheet tools.
package services

// TimeSpan is one bounded interval within a single day. Start and End are
// clock strings ("H:MM" or "HH:MM"); no overnight wraparound is supported.
type TimeSpan struct {
	Active bool   `json:"active"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// TimeEntry is one workday's activity. Date is the unique key within a sheet.
type TimeEntry struct {
	Date          string   `json:"date"` // ISO YYYY-MM-DD
	TravelTo      TimeSpan `json:"travelTo"`
	TravelHome    TimeSpan `json:"travelHome"`
	Onsite        TimeSpan `json:"onsite"`
	Lunch         bool     `json:"lunch"`
	LunchDuration float64  `json:"lunchDuration"` // fractional hours
	Holiday       bool     `json:"holiday"`
	TravelOnly    bool     `json:"travelOnly"`
	ServiceWork   string   `json:"serviceWork"`
}

// CustomerInfo is attached once per report, not per entry.
type CustomerInfo struct {
	Company   string `json:"company"`
	Contact   string `json:"contact"`
	Title     string `json:"title"`
	Address   string `json:"address"`
	CityState string `json:"cityState"`
	Purpose   string `json:"purpose"`
}

// Charges holds the charge totals lifted verbatim from the source document.
// Values are strings so that "no value found" (empty) stays distinguishable
// from "value is zero" downstream.
type Charges struct {
	StraightHours      string `json:"straightHours"`
	OvertimeHours      string `json:"overtimeHours"`
	WeekdayTravelHours string `json:"weekdayTravelHours"`
	PerDiemDays        string `json:"perDiemDays"`
	PerDiemRate        string `json:"perDiemRate"`
	AutoRental         string `json:"autoRental"`
	AirTransport       string `json:"airTransport"`
}

// TravelLeg is one directional itinerary segment, kept for cross-reference
// and display only; the calculator never consumes it.
type TravelLeg struct {
	Date           string `json:"date"` // ISO YYYY-MM-DD
	DepartTime     string `json:"departTime"`
	DepartZone     string `json:"departZone"`
	DepartLocation string `json:"departLocation"`
	ArriveTime     string `json:"arriveTime"`
	ArriveZone     string `json:"arriveZone"`
	ArriveLocation string `json:"arriveLocation"`
}

// ExtractedReport is the extractor output for one imported document. It is
// never mutated after creation except by a full re-extraction.
type ExtractedReport struct {
	SRNumber        string       `json:"srNumber"`
	Customer        CustomerInfo `json:"customer"`
	TimeEntries     []TimeEntry  `json:"timeEntries"`
	Charges         Charges      `json:"charges"`
	TravelItinerary []TravelLeg  `json:"travelItinerary"`
}
