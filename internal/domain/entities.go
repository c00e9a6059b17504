package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address has no "complemento"/unit-number field; two suppliers at the same
// street+number are considered co-located even inside a large commercial
// building. The SHARED_ADDRESS indicator accepts that noise deliberately
// (spec §4.2): the signal only matters in combination with other indicators.
type Address struct {
	Street      string
	Number      string
	Municipality string
	State       string
	PostalCode  string
}

// SameStreetAndNumber reports whether a and b share a street and number,
// ignoring the rest of the address.
func (a Address) SameStreetAndNumber(b Address) bool {
	return a.Street != "" && a.Street == b.Street && a.Number == b.Number
}

// Partner is a natural or juridical person holding an ownership link in a
// supplier. PersonHash is the keyed-hash identifier; plain person ids never
// appear here.
type Partner struct {
	PersonHash       PersonHash
	Name             string
	Qualification    string
	IsPublicServant  bool
	EmployingBody    string
	IsSanctioned     bool
	GovSupplierCount int
}

// OwnershipLink relates a Supplier to a Partner.
type OwnershipLink struct {
	Supplier      CompanyID
	Partner       PersonHash
	Qualification string
	EntryDate     time.Time
	ExitDate      *time.Time
	CapitalShare  Share
}

// Contract is a public-sector procurement contract held by a supplier.
type Contract struct {
	Supplier     CompanyID
	OrgCode      GovOrgCode
	Value        Money
	Subject      string
	TenderNumber TenderNumber
	SignedDate   *time.Time
	ValidUntil   *time.Time
}

// Sanction is a regulatory sanction recorded against a supplier.
type Sanction struct {
	Kind             SanctionKind
	SanctioningBody  string
	Reason           string
	StartDate        time.Time
	EndDate          *time.Time
}

// Active reports whether the sanction is in force as of referenceDate. Pure:
// the caller supplies "today" so the result is reproducible in tests.
func (s Sanction) Active(referenceDate time.Time) bool {
	if s.EndDate == nil {
		return true
	}
	return !s.EndDate.Before(referenceDate)
}

// Donation is an electoral donation, linked to a supplier and/or a partner.
// At least one of SupplierRef/PartnerRef is set.
type Donation struct {
	SupplierRef    *CompanyID
	PartnerRef     *PersonHash
	CandidateName  string
	CandidateParty string
	CandidateOffice string
	OrgCodeAligned GovOrgCode // government body the candidate's office aligns with, when known
	Amount         Money
	ElectionYear   int
	Resource       ResourceType
}

// IsMaterial reports whether the donation amount exceeds threshold — the
// DONATION_TO_CONTRACT_AWARDER alert's first of two joint conditions.
func (d Donation) IsMaterial(threshold Money) bool {
	return d.Amount.GreaterThan(threshold)
}

// CriticalAlert is a binary signal that a named suspicious condition holds.
// Never derived from, or contributing to, the cumulative score.
type CriticalAlert struct {
	ID          uuid.UUID
	Kind        AlertKind
	Severity    Severity
	Description string
	Evidence    string
	PartnerRef  *PersonHash
	DetectedAt  time.Time
}

// Key identifies an alert for deduplication: (kind, partner reference).
func (a CriticalAlert) Key() AlertKey {
	var p PersonHash
	if a.PartnerRef != nil {
		p = *a.PartnerRef
	}
	return AlertKey{Kind: a.Kind, Partner: p}
}

// AlertKey is the dedup/uniqueness key for a CriticalAlert.
type AlertKey struct {
	Kind    AlertKind
	Partner PersonHash
}

// Indicator is a single active contributor to a ScoreBreakdown.
type Indicator struct {
	Kind        IndicatorKind
	Weight      int
	Description string
	Evidence    string
}

// ScoreBreakdown is the cumulative-score result. Total is the clamped sum of
// active indicator weights; Band is the closed-interval lookup over Total.
type ScoreBreakdown struct {
	Indicators []Indicator
	ComputedAt time.Time
}

// Total sums active indicator weights, clamped to 100.
func (s ScoreBreakdown) Total() int {
	sum := 0
	for _, ind := range s.Indicators {
		sum += ind.Weight
	}
	if sum > 100 {
		return 100
	}
	return sum
}

// Band derives the risk band from Total.
func (s ScoreBreakdown) Band() RiskBand { return BandForScore(s.Total()) }

// Supplier is the aggregate root: a company with at least one public-sector
// contract. Alerts and score are derived elsewhere and never edited here.
type Supplier struct {
	ID                 CompanyID
	LegalName          string
	OpeningDate        *time.Time
	Capital            *Money
	PrimaryActivity    CNAECode
	ActivityDescription string
	Address            *Address
	CadastralStatus    CadastralStatus
	TotalContracts     int
	TotalContractValue Money
	SharedAddressCount int // other suppliers sharing street+number, precomputed by the store
	EmployeeCount      *int
}
