package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"servicereports/services"
)

// HandleReportList returns saved report summaries, newest first.
// Route: GET /reports
func HandleReportList(store services.ReportStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		summaries, err := store.List()
		if err != nil {
			log.Printf("report_list: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Could not list reports")
		}
		return e.JSON(http.StatusOK, map[string]any{"reports": summaries})
	}
}

// HandleReportView returns one saved export document.
// Route: GET /reports/{id}
func HandleReportView(store services.ReportStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		doc, err := store.Load(id)
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Report not found")
		}
		return e.JSON(http.StatusOK, doc)
	}
}

// HandleReportDelete removes a saved report.
// Route: DELETE /reports/{id}
func HandleReportDelete(store services.ReportStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if err := store.Delete(id); err != nil {
			return jsonError(e, http.StatusNotFound, "Report not found")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": id})
	}
}
