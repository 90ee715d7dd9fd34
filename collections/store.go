package collections

import (
	"encoding/json"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"servicereports/services"
)

// ReportStore persists export documents in the reports collection. It is
// the only place the core's store interface touches PocketBase.
type ReportStore struct {
	app *pocketbase.PocketBase
}

// NewReportStore wraps an app in a services.ReportStore implementation.
func NewReportStore(app *pocketbase.PocketBase) *ReportStore {
	return &ReportStore{app: app}
}

var _ services.ReportStore = (*ReportStore)(nil)

func (s *ReportStore) Save(name string, doc services.ExportDocument) (string, error) {
	col, err := s.app.FindCollectionByNameOrId("reports")
	if err != nil {
		return "", fmt.Errorf("find reports collection: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode report document: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("sr_number", doc.SRNumber)
	record.Set("document", string(raw))

	if err := s.app.Save(record); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return record.Id, nil
}

func (s *ReportStore) Load(id string) (services.ExportDocument, error) {
	record, err := s.app.FindRecordById("reports", id)
	if err != nil {
		return services.ExportDocument{}, fmt.Errorf("report %s: %w", id, err)
	}

	var doc services.ExportDocument
	raw := record.GetString("document")
	// Decoding runs the head-status upgrade, so legacy shapes saved by
	// older builds come back normalized.
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return services.ExportDocument{}, fmt.Errorf("decode report %s: %w", id, err)
	}
	return doc, nil
}

func (s *ReportStore) List() ([]services.ReportSummary, error) {
	records, err := s.app.FindRecordsByFilter("reports", "id != ''", "-created", 200, 0)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	summaries := make([]services.ReportSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, services.ReportSummary{
			ID:       r.Id,
			Name:     r.GetString("name"),
			SRNumber: r.GetString("sr_number"),
			Created:  r.GetString("created"),
		})
	}
	return summaries, nil
}

func (s *ReportStore) Delete(id string) error {
	record, err := s.app.FindRecordById("reports", id)
	if err != nil {
		return fmt.Errorf("report %s: %w", id, err)
	}
	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	return nil
}
