package sqlitestore

import (
	"context"
	"testing"
	"time"
)

func TestDonationsFor_DirectAndViaPartner(t *testing.T) {
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
	if err := store.InsertPartner(ctx, "hash-1", "Maria Silva", false, "", false, 0,
		testSupplierID, "owner", entry, nil, "100.00"); err != nil {
		t.Fatalf("InsertPartner: %v", err)
	}

	supplierID := testSupplierID
	if err := store.InsertDonation(ctx, &supplierID, nil, "Candidate Direct", "PARTY", "mayor", "ORG-1", "5000.00", 2022, "OWN"); err != nil {
		t.Fatalf("InsertDonation: %v", err)
	}
	personHash := "hash-1"
	if err := store.InsertDonation(ctx, nil, &personHash, "Candidate Via Partner", "PARTY", "governor", "ORG-2", "7000.00", 2022, "PARTY"); err != nil {
		t.Fatalf("InsertDonation: %v", err)
	}

	id := mustCompanyID(t, testSupplierID)
	donations, err := store.DonationsFor(ctx, id)
	if err != nil {
		t.Fatalf("DonationsFor: %v", err)
	}
	if len(donations) != 2 {
		t.Fatalf("got %d donations, want 2 (one direct, one via partner)", len(donations))
	}
}

func TestDonationsFor_EmptyResultIsNonNilSlice(t *testing.T) {
	ctx := context.Background()
	store, err := OpenTestStore(ctx)
	if err != nil {
		t.Fatalf("OpenTestStore: %v", err)
	}
	defer store.Close()

	id := mustCompanyID(t, testSupplierID)
	donations, err := store.DonationsFor(ctx, id)
	if err != nil {
		t.Fatalf("DonationsFor: %v", err)
	}
	if donations == nil {
		t.Fatal("expected a non-nil empty slice")
	}
}
