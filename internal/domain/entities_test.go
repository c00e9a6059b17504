package domain

import (
	"testing"
	"time"
)

func TestAddressSameStreetAndNumber(t *testing.T) {
	a := Address{Street: "Rua das Flores", Number: "100"}
	b := Address{Street: "Rua das Flores", Number: "100"}
	c := Address{Street: "Rua das Flores", Number: "200"}
	empty := Address{}

	if !a.SameStreetAndNumber(b) {
		t.Error("expected matching street+number to report true")
	}
	if a.SameStreetAndNumber(c) {
		t.Error("expected different number to report false")
	}
	if empty.SameStreetAndNumber(empty) {
		t.Error("two blank addresses must not be considered co-located")
	}
}

func TestSanctionActive(t *testing.T) {
	ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	openEnded := Sanction{StartDate: ref.AddDate(-1, 0, 0)}
	if !openEnded.Active(ref) {
		t.Error("a sanction with no end date should be active")
	}

	ongoing := Sanction{StartDate: ref.AddDate(-1, 0, 0), EndDate: timePtr(ref.AddDate(0, 1, 0))}
	if !ongoing.Active(ref) {
		t.Error("a sanction whose end date is after the reference should be active")
	}

	expired := Sanction{StartDate: ref.AddDate(-2, 0, 0), EndDate: timePtr(ref.AddDate(-1, 0, 0))}
	if expired.Active(ref) {
		t.Error("a sanction whose end date is before the reference should not be active")
	}
}

func TestDonationIsMaterial(t *testing.T) {
	threshold := MoneyFromCents(10_000_00)
	material := Donation{Amount: MoneyFromCents(10_000_01)}
	notMaterial := Donation{Amount: MoneyFromCents(10_000_00)}

	if !material.IsMaterial(threshold) {
		t.Error("expected amount strictly above threshold to be material")
	}
	if notMaterial.IsMaterial(threshold) {
		t.Error("amount equal to threshold should not be material (strictly greater)")
	}
}

func TestScoreBreakdownTotalClampedAndBand(t *testing.T) {
	sb := ScoreBreakdown{Indicators: []Indicator{
		{Kind: IndicatorLowCapital, Weight: 15},
		{Kind: IndicatorRecentCompany, Weight: 10},
		{Kind: IndicatorActivityMismatch, Weight: 10},
		{Kind: IndicatorPartnerInManySuppliers, Weight: 20},
		{Kind: IndicatorSharedAddress, Weight: 15},
		{Kind: IndicatorExclusiveBuyer, Weight: 10},
		{Kind: IndicatorNoEmployees, Weight: 10},
		{Kind: IndicatorSuddenGrowth, Weight: 10},
		{Kind: IndicatorHistoricalSanction, Weight: 5},
	}}
	if sb.Total() != 100 {
		t.Errorf("Total() = %d, want clamped to 100 (sum is 105)", sb.Total())
	}
	if sb.Band() != BandCritical {
		t.Errorf("Band() = %s, want CRITICAL at 100", sb.Band())
	}
}

func TestBandForScoreBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  RiskBand
	}{
		{0, BandLow},
		{20, BandLow},
		{21, BandModerate},
		{40, BandModerate},
		{41, BandHigh},
		{65, BandHigh},
		{66, BandCritical},
		{100, BandCritical},
	}
	for _, tt := range tests {
		if got := BandForScore(tt.score); got != tt.want {
			t.Errorf("BandForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestCriticalAlertKey(t *testing.T) {
	hash := PersonHash("abc123")
	withPartner := CriticalAlert{Kind: AlertPartnerIsPublicServant, PartnerRef: &hash}
	withoutPartner := CriticalAlert{Kind: AlertSanctionedSupplierStillContracting}

	if withPartner.Key() != (AlertKey{Kind: AlertPartnerIsPublicServant, Partner: hash}) {
		t.Error("Key() should carry the partner hash through")
	}
	if withoutPartner.Key() != (AlertKey{Kind: AlertSanctionedSupplierStillContracting}) {
		t.Error("Key() for a nil PartnerRef should use the zero PersonHash")
	}
}

func timePtr(t time.Time) *time.Time { return &t }
