package sqlitestore

import (
	"context"
	"testing"
	"time"
)

func TestPartnersOf(t *testing.T) {
	ctx := context.Background()
	store, err := OpenTestStore(ctx)
	if err != nil {
		t.Fatalf("OpenTestStore: %v", err)
	}
	defer store.Close()

	if err := store.InsertSupplier(ctx, Fixture{SupplierID: testSupplierID, LegalName: "A"}); err != nil {
		t.Fatalf("InsertSupplier: %v", err)
	}
	entry := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := store.InsertPartner(ctx, "hash-1", "Maria Silva", true, "Ministry of Health", false, 4,
		testSupplierID, "administrator", entry, nil, "50.00"); err != nil {
		t.Fatalf("InsertPartner: %v", err)
	}

	id := mustCompanyID(t, testSupplierID)
	links, err := store.PartnersOf(ctx, id)
	if err != nil {
		t.Fatalf("PartnersOf: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("got %d partner links, want 1", len(links))
	}
	l := links[0]
	if l.Name != "Maria Silva" {
		t.Errorf("Name = %q, want Maria Silva", l.Name)
	}
	if !l.IsPublicServant {
		t.Error("expected IsPublicServant = true")
	}
	if l.GovSupplierCount != 4 {
		t.Errorf("GovSupplierCount = %d, want 4", l.GovSupplierCount)
	}
	if l.CapitalShare.String() != "50" {
		t.Errorf("CapitalShare = %s, want 50", l.CapitalShare.String())
	}
}

func TestPartnersOf_EmptyResultIsNonNilSlice(t *testing.T) {
	ctx := context.Background()
	store, err := OpenTestStore(ctx)
	if err != nil {
		t.Fatalf("OpenTestStore: %v", err)
	}
	defer store.Close()

	id := mustCompanyID(t, testSupplierID)
	links, err := store.PartnersOf(ctx, id)
	if err != nil {
		t.Fatalf("PartnersOf: %v", err)
	}
	if links == nil {
		t.Fatal("expected a non-nil empty slice")
	}
}
