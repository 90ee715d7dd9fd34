package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"servicereports/collections"
	"servicereports/services"
)

// HandleReportImport extracts an uploaded document and saves the resulting
// export document. The format variant is caller-selected, never guessed.
// Route: POST /reports/import
//
// Form fields:
//
//	variant  - spreadsheet | text-variant-A | text-variant-B (required)
//	file     - .xlsx workbook (spreadsheet variant) or source .pdf (optional
//	           for text variants; validated and page-counted only)
//	text     - extracted page text (text variants)
//	fragments- optional JSON list of {"text": ...} runs, diagnostics only
//	machines - optional JSON list of machine info blocks
//	sheet    - optional sheet-name override (spreadsheet variant)
//	name     - optional display name, defaults to the upload filename
func HandleReportImport(app *pocketbase.PocketBase, store services.ReportStore, homeBase string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return jsonError(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		variant, err := services.ParseVariant(e.Request.FormValue("variant"))
		if err != nil {
			return jsonError(e, http.StatusBadRequest, err.Error())
		}

		opts := services.ExtractOptions{
			Sheet:    e.Request.FormValue("sheet"),
			HomeBase: homeBase,
		}

		name := e.Request.FormValue("name")

		var report *services.ExtractedReport
		switch variant {
		case services.VariantSpreadsheet:
			file, header, err := e.Request.FormFile("file")
			if err != nil {
				return jsonError(e, http.StatusBadRequest, "Please select a workbook to upload")
			}
			defer file.Close()
			if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
				return jsonError(e, http.StatusBadRequest, "Spreadsheet imports must be .xlsx")
			}
			if name == "" {
				name = header.Filename
			}

			grid, err := services.GridFromXLSX(file)
			if err != nil {
				log.Printf("report_import: %v", err)
				return jsonError(e, http.StatusBadRequest, "Could not read workbook")
			}
			report, err = services.ExtractFromGrid(grid, opts)
			if err != nil {
				return extractionError(e, err)
			}

		default:
			pageText := e.Request.FormValue("text")
			if pageText == "" {
				return jsonError(e, http.StatusBadRequest, "Text variants require the extracted page text")
			}
			if name == "" {
				name = "imported report"
			}

			if pages, err := preflightPDF(e.Request); err != nil {
				return jsonError(e, http.StatusBadRequest, err.Error())
			} else if pages > 0 {
				log.Printf("report_import: source PDF validated, %d page(s)", pages)
			}

			var fragments []services.TextFragment
			if rawFragments := e.Request.FormValue("fragments"); rawFragments != "" {
				if err := json.Unmarshal([]byte(rawFragments), &fragments); err != nil {
					log.Printf("report_import: ignoring malformed fragments: %v", err)
				}
			}

			report, err = services.ExtractFromText(pageText, fragments, variant, opts)
			if err != nil {
				return extractionError(e, err)
			}
		}

		var machines []services.MachineInfo
		if rawMachines := e.Request.FormValue("machines"); rawMachines != "" {
			if err := json.Unmarshal([]byte(rawMachines), &machines); err != nil {
				return jsonError(e, http.StatusBadRequest, "Invalid machine info payload")
			}
		}

		doc := services.BuildExportDocument(report, machines, collections.ActiveRates(app))

		id, err := store.Save(name, doc)
		if err != nil {
			log.Printf("report_import: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Could not save report")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":       id,
			"document": doc,
		})
	}
}

// extractionError maps a FormatError to 422 with the missing artifact named
// for user-facing display; anything else is a plain bad request.
func extractionError(e *core.RequestEvent, err error) error {
	var formatErr *services.FormatError
	if errors.As(err, &formatErr) {
		return jsonError(e, http.StatusUnprocessableEntity, formatErr.Error())
	}
	return jsonError(e, http.StatusBadRequest, err.Error())
}

// preflightPDF validates an optionally attached source PDF and returns its
// page count. No file attached means no preflight (zero pages, nil error).
func preflightPDF(r *http.Request) (int, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return 0, nil
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return 0, fmt.Errorf("text variants accept only a source .pdf attachment")
	}

	tmp, err := os.CreateTemp("", "import-*.pdf")
	if err != nil {
		return 0, fmt.Errorf("stage PDF: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		return 0, fmt.Errorf("stage PDF: %w", err)
	}

	if err := api.ValidateFile(tmp.Name(), nil); err != nil {
		return 0, fmt.Errorf("source PDF failed validation: %v", err)
	}
	pages, err := api.PageCountFile(tmp.Name())
	if err != nil {
		return 0, fmt.Errorf("source PDF page count: %v", err)
	}
	return pages, nil
}
