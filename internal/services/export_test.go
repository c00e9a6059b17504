package services_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"supplierwatch/internal/apperr"
	"supplierwatch/internal/domain"
	"supplierwatch/internal/services"
)

func sampleDossier() *services.Dossier {
	return &services.Dossier{
		Supplier: domain.Supplier{
			ID:        mustCompanyIDExport(),
			LegalName: "Acme Ltda",
		},
		Contracts:   []domain.Contract{{Value: domain.MoneyFromCents(1000_00), Subject: "cleaning"}},
		Disclaimer:  "disclaimer text",
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func mustCompanyIDExport() domain.CompanyID {
	id, err := domain.NewCompanyID("11234567000149")
	if err != nil {
		panic(err)
	}
	return id
}

func TestExportService_JSON(t *testing.T) {
	svc := services.NewExportService()
	payload, err := svc.Export(sampleDossier(), services.ExportJSON)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if payload.ContentType != "application/json" {
		t.Errorf("ContentType = %q, want application/json", payload.ContentType)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload.Body, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestExportService_CSV(t *testing.T) {
	svc := services.NewExportService()
	payload, err := svc.Export(sampleDossier(), services.ExportCSV)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if payload.ContentType != "text/csv" {
		t.Errorf("ContentType = %q, want text/csv", payload.ContentType)
	}
	text := string(payload.Body)
	if !strings.Contains(text, "cadastral_id") {
		t.Error("expected a cadastral section header")
	}
	if !strings.Contains(text, "Acme Ltda") {
		t.Error("expected the legal name to appear in the cadastral row")
	}
	if strings.Count(text, "\n\n") == 0 {
		t.Error("expected blank lines separating CSV sections")
	}

	r := csv.NewReader(bytes.NewReader(payload.Body))
	r.FieldsPerRecord = -1
	if _, err := r.ReadAll(); err != nil {
		t.Errorf("output is not parseable as CSV: %v", err)
	}
}

func TestExportService_PDFUnimplemented(t *testing.T) {
	svc := services.NewExportService()
	_, err := svc.Export(sampleDossier(), services.ExportPDF)
	if !apperr.IsUnimplemented(err) {
		t.Fatalf("expected apperr.Unimplemented, got %v", err)
	}
}

func TestExportService_UnknownFormat(t *testing.T) {
	svc := services.NewExportService()
	_, err := svc.Export(sampleDossier(), services.ExportFormat("xml"))
	if !apperr.IsInputInvalid(err) {
		t.Fatalf("expected apperr.InputInvalid, got %v", err)
	}
}
