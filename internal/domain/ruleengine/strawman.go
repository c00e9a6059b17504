package ruleengine

import (
	"fmt"

	"supplierwatch/internal/domain"
)

// StrawmanThresholds configures the age bounds of the STRAWMAN heuristic
// bundle. "No prior business history" and "disproportionate capital" are
// not computed here; the caller supplies them as booleans on StrawmanInputs
// rather than this package guessing at a formula.
type StrawmanThresholds struct {
	MinAge int // partners younger than this are suspect; 0 disables the check
	MaxAge int // partners older than this are suspect; 0 disables the check
}

// DefaultStrawmanThresholds mirrors the age bounds implied by the
// originating pipeline's strawman heuristic commentary.
var DefaultStrawmanThresholds = StrawmanThresholds{MinAge: 20, MaxAge: 80}

// PartnerAge pairs a partner with their age, when known.
type PartnerAge struct {
	Partner domain.PersonHash
	Age     int
	Known   bool
}

// StrawmanInputs is the data STRAWMAN needs. Every data field is a pointer
// or carries a Known flag (Thresholds falls back to the defaults when left
// zero); when the data required to evaluate a branch is
// entirely absent, detectStrawman returns no alert for that branch rather
// than fabricate a positive (spec §4.1).
type StrawmanInputs struct {
	PartnerAges []PartnerAge

	NoPriorBusinessHistory      *bool
	CapitalDisproportionate     *bool
	HighGovernmentContractTotal *bool

	Thresholds StrawmanThresholds
}

func detectStrawman(supplier domain.Supplier, ctx AlertContext) []domain.CriticalAlert {
	thresholds := ctx.Strawman.Thresholds
	if thresholds.MinAge == 0 && thresholds.MaxAge == 0 {
		thresholds = DefaultStrawmanThresholds
	}

	var alerts []domain.CriticalAlert
	for _, pa := range ctx.Strawman.PartnerAges {
		if !pa.Known {
			continue
		}
		if (thresholds.MinAge > 0 && pa.Age < thresholds.MinAge) || (thresholds.MaxAge > 0 && pa.Age > thresholds.MaxAge) {
			pa := pa
			desc := fmt.Sprintf("Partner age %d falls outside the plausible business-owner range", pa.Age)
			evidence := fmt.Sprintf("partner_hash=%s, age=%d", pa.Partner, pa.Age)
			alerts = append(alerts, newAlert(domain.AlertStrawman, domain.SeverityCritical, desc, evidence, &pa.Partner, ctx.Reference))
		}
	}

	in := ctx.Strawman
	if in.NoPriorBusinessHistory != nil && *in.NoPriorBusinessHistory &&
		in.CapitalDisproportionate != nil && *in.CapitalDisproportionate &&
		in.HighGovernmentContractTotal != nil && *in.HighGovernmentContractTotal {
		desc := "No prior business history, disproportionate declared capital, and a high government-contract total"
		evidence := "no_prior_history=true, capital_disproportionate=true, high_gov_contract_total=true"
		alerts = append(alerts, newAlert(domain.AlertStrawman, domain.SeverityCritical, desc, evidence, nil, ctx.Reference))
	}

	return alerts
}
