package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"servicereports/collections"
	"servicereports/services"
	"servicereports/testhelpers"
)

func exportRequest(t *testing.T, app *pocketbase.PocketBase, store services.ReportStore, id, format string) *httptest.ResponseRecorder {
	t.Helper()

	handler := HandleReportExport(store)

	req := httptest.NewRequest(http.MethodGet, "/reports/"+id+"/export/"+format, nil)
	req.SetPathValue("id", id)
	req.SetPathValue("format", format)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestHandleReportExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := collections.NewReportStore(app)
	id := savedTestReport(t, store)

	t.Run("json", func(t *testing.T) {
		rec := exportRequest(t, app, store, id, "json")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"customerInfo"`) {
			t.Error("json export should carry the document")
		}
	})

	t.Run("pdf", func(t *testing.T) {
		rec := exportRequest(t, app, store, id, "pdf")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("content type = %q", ct)
		}
		if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
			t.Error("pdf export should start with the PDF header")
		}
	})

	t.Run("xlsx", func(t *testing.T) {
		rec := exportRequest(t, app, store, id, "xlsx")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
			t.Errorf("content type = %q", ct)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		rec := exportRequest(t, app, store, id, "docx")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing report", func(t *testing.T) {
		rec := exportRequest(t, app, store, "nonexistent", "json")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
