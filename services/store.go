package services

// ReportSummary is one saved report in a listing.
type ReportSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SRNumber string `json:"srNumber"`
	Created  string `json:"created"`
}

// ReportStore persists export documents. The core never reaches into
// ambient storage; callers inject an implementation.
type ReportStore interface {
	Save(name string, doc ExportDocument) (id string, err error)
	Load(id string) (ExportDocument, error)
	List() ([]ReportSummary, error)
	Delete(id string) error
}
