package services_test

import (
	"context"
	"testing"
	"time"

	"supplierwatch/internal/adapters/sqlitestore"
	"supplierwatch/internal/apperr"
	"supplierwatch/internal/domain"
	"supplierwatch/internal/services"
)

const testSupplierID = "11234567000149"

func mustCompanyID(t *testing.T, raw string) domain.CompanyID {
	t.Helper()
	id, err := domain.NewCompanyID(raw)
	if err != nil {
		t.Fatalf("fixture company id %q invalid: %v", raw, err)
	}
	return id
}

func TestDossierService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	store, err := sqlitestore.OpenTestStore(ctx)
	if err != nil {
		t.Fatalf("OpenTestStore: %v", err)
	}
	defer store.Close()

	svc := services.NewDossierService(store, "disclaimer text", nil)
	_, err = svc.Get(ctx, mustCompanyID(t, testSupplierID))
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected apperr.NotFound, got %v", err)
	}
}

func TestDossierService_Get_AssemblesFullView(t *testing.T) {
	ctx := context.Background()
	store, err := sqlitestore.OpenTestStore(ctx)
	if err != nil {
		t.Fatalf("OpenTestStore: %v", err)
	}
	defer store.Close()

	if err := store.InsertSupplier(ctx, sqlitestore.Fixture{
		SupplierID: testSupplierID, LegalName: "Acme Ltda", CadastralStatus: "ACTIVE",
	}); err != nil {
		t.Fatalf("InsertSupplier: %v", err)
	}
	if err := store.InsertContract(ctx, testSupplierID, "ORG-1", "1000.00", "cleaning services", "TENDER-1", nil, nil); err != nil {
		t.Fatalf("InsertContract: %v", err)
	}
	entry := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := store.InsertPartner(ctx, "hash-1", "Public Servant Partner", true, "Ministry", false, 0,
		testSupplierID, "owner", entry, nil, "100.00"); err != nil {
		t.Fatalf("InsertPartner: %v", err)
	}

	fixedNow := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := services.NewDossierService(store, "report disclaimer", func() time.Time { return fixedNow })

	dossier, err := svc.Get(ctx, mustCompanyID(t, testSupplierID))
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if dossier.Supplier.LegalName != "Acme Ltda" {
		t.Errorf("Supplier.LegalName = %q, want Acme Ltda", dossier.Supplier.LegalName)
	}
	if len(dossier.Contracts) != 1 {
		t.Errorf("got %d contracts, want 1", len(dossier.Contracts))
	}
	if len(dossier.Partners) != 1 {
		t.Errorf("got %d partners, want 1", len(dossier.Partners))
	}
	if len(dossier.Alerts) != 1 || dossier.Alerts[0].Kind != domain.AlertPartnerIsPublicServant {
		t.Fatalf("expected a single PARTNER_IS_PUBLIC_SERVANT alert, got %+v", dossier.Alerts)
	}
	if dossier.Disclaimer != "report disclaimer" {
		t.Errorf("Disclaimer = %q, want the configured text", dossier.Disclaimer)
	}
	if !dossier.GeneratedAt.Equal(fixedNow) {
		t.Errorf("GeneratedAt = %s, want the injected clock value", dossier.GeneratedAt)
	}
}
