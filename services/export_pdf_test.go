package services

import (
	"testing"
)

func TestGenerateReportPDF_Basic(t *testing.T) {
	doc := BuildExportDocument(sampleReport(), nil, DefaultRates())

	result, err := GenerateReportPDF(doc, "2024-09-20")
	if err != nil {
		t.Fatalf("GenerateReportPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateReportPDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateReportPDF_EmptyReport(t *testing.T) {
	doc := BuildExportDocument(&ExtractedReport{}, nil, DefaultRates())

	result, err := GenerateReportPDF(doc, "2024-09-20")
	if err != nil {
		t.Fatalf("GenerateReportPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateReportPDF() returned empty bytes")
	}
}
