package domain

// AlertKind identifies one of the discrete critical-alert conditions. Never
// appears in a ScoreBreakdown.
type AlertKind string

const (
	AlertPartnerIsPublicServant             AlertKind = "PARTNER_IS_PUBLIC_SERVANT"
	AlertSanctionedSupplierStillContracting AlertKind = "SANCTIONED_SUPPLIER_STILL_CONTRACTING"
	AlertTenderRotation                     AlertKind = "TENDER_ROTATION"
	AlertDonationToContractAwarder          AlertKind = "DONATION_TO_CONTRACT_AWARDER"
	AlertPartnerSanctionedElsewhere         AlertKind = "PARTNER_SANCTIONED_ELSEWHERE"
	AlertStrawman                           AlertKind = "STRAWMAN"
)

// Severity ranks a CriticalAlert. There are exactly two levels in this
// system: Severe and Critical ("most severe").
type Severity string

const (
	SeveritySevere   Severity = "SEVERE"
	SeverityCritical Severity = "CRITICAL"
)

// IndicatorKind identifies one of the cumulative-score indicators. Never
// appears in the alert list.
type IndicatorKind string

const (
	IndicatorLowCapital             IndicatorKind = "LOW_CAPITAL"
	IndicatorRecentCompany          IndicatorKind = "RECENT_COMPANY"
	IndicatorActivityMismatch       IndicatorKind = "ACTIVITY_MISMATCH"
	IndicatorPartnerInManySuppliers IndicatorKind = "PARTNER_IN_MANY_SUPPLIERS"
	IndicatorSharedAddress          IndicatorKind = "SHARED_ADDRESS"
	IndicatorExclusiveBuyer         IndicatorKind = "EXCLUSIVE_BUYER"
	IndicatorNoEmployees            IndicatorKind = "NO_EMPLOYEES"
	IndicatorSuddenGrowth           IndicatorKind = "SUDDEN_GROWTH"
	IndicatorHistoricalSanction     IndicatorKind = "HISTORICAL_SANCTION"
)

// IndicatorWeights is the authoritative weight table. Sum of all weights is
// 105; the computed total is clamped to 100.
var IndicatorWeights = map[IndicatorKind]int{
	IndicatorLowCapital:             15,
	IndicatorRecentCompany:          10,
	IndicatorActivityMismatch:       10,
	IndicatorPartnerInManySuppliers: 20,
	IndicatorSharedAddress:          15,
	IndicatorExclusiveBuyer:         10,
	IndicatorNoEmployees:            10,
	IndicatorSuddenGrowth:           10,
	IndicatorHistoricalSanction:     5,
}

// RiskBand is the closed-interval lookup over the cumulative score.
type RiskBand string

const (
	BandLow      RiskBand = "LOW"
	BandModerate RiskBand = "MODERATE"
	BandHigh     RiskBand = "HIGH"
	BandCritical RiskBand = "CRITICAL"
)

// BandForScore implements the §4.2 closed-interval lookup.
func BandForScore(total int) RiskBand {
	switch {
	case total <= 20:
		return BandLow
	case total <= 40:
		return BandModerate
	case total <= 65:
		return BandHigh
	default:
		return BandCritical
	}
}

// CadastralStatus mirrors the registry status of a company.
type CadastralStatus string

const (
	CadastralActive       CadastralStatus = "ACTIVE"
	CadastralSuspended    CadastralStatus = "SUSPENDED"
	CadastralUnfit        CadastralStatus = "UNFIT"
	CadastralDeregistered CadastralStatus = "DEREGISTERED"
	CadastralNull         CadastralStatus = "NULL"
)

// SanctionKind is one of the three public sanction registries this system
// tracks.
type SanctionKind string

const (
	// SanctionKindDebarment mirrors the supplier debarment registry (CEIS).
	SanctionKindDebarment SanctionKind = "DEBARMENT"
	// SanctionKindNonprofitBan mirrors the unqualified-nonprofit registry (CEPIM).
	SanctionKindNonprofitBan SanctionKind = "NONPROFIT_BAN"
	// SanctionKindCompanyBan mirrors the national company-penalty registry (CNEP).
	SanctionKindCompanyBan SanctionKind = "COMPANY_BAN"
)

// ResourceType classifies the origin of a donation's funds.
type ResourceType string

const (
	ResourceOwn        ResourceType = "OWN"
	ResourceParty      ResourceType = "PARTY"
	ResourceThirdParty ResourceType = "THIRD_PARTY"
)
