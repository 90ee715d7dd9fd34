package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"servicereports/services"
)

// HandleReportExport streams a saved report in the requested format.
// Route: GET /reports/{id}/export/{format}   (format: json | pdf | xlsx)
func HandleReportExport(store services.ReportStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		format := e.Request.PathValue("format")

		doc, err := store.Load(id)
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Report not found")
		}

		switch format {
		case "json":
			e.Response.Header().Set("Content-Disposition",
				fmt.Sprintf(`attachment; filename="report-%s.json"`, id))
			return e.JSON(http.StatusOK, doc)

		case "pdf":
			pdfBytes, err := services.GenerateReportPDF(doc, time.Now().Format("02 Jan 2006"))
			if err != nil {
				log.Printf("report_export: %v", err)
				return jsonError(e, http.StatusInternalServerError, "PDF generation failed")
			}
			e.Response.Header().Set("Content-Type", "application/pdf")
			e.Response.Header().Set("Content-Disposition",
				fmt.Sprintf(`attachment; filename="report-%s.pdf"`, id))
			e.Response.Write(pdfBytes)
			return nil

		case "xlsx":
			xlsxBytes, err := services.GenerateTimesheetExcel(doc)
			if err != nil {
				log.Printf("report_export: %v", err)
				return jsonError(e, http.StatusInternalServerError, "Excel generation failed")
			}
			e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			e.Response.Header().Set("Content-Disposition",
				fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, id))
			e.Response.Write(xlsxBytes)
			return nil
		}

		return jsonError(e, http.StatusBadRequest, "Unknown export format: "+format)
	}
}
