// Package ruleengine implements the two independent rule dimensions of the
// supplier risk model: discrete critical alerts (this file) and the
// cumulative score (score.go). Both are pure functions of in-memory data —
// no IO, no shared state — and by design never call into each other. A
// property test in alerts_score_independence_test.go enforces that no alert
// kind identifier appears in the score package's vocabulary and vice versa.
package ruleengine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"supplierwatch/internal/domain"
)

// RelatedSupplierContracts describes another supplier that shares a partner
// with the supplier under evaluation, along with that supplier's contracts —
// the minimal view TENDER_ROTATION needs. Supplying none is valid; the
// detector simply emits no rotation alerts.
type RelatedSupplierContracts struct {
	Supplier      domain.CompanyID
	SharedPartner domain.PersonHash
	Contracts     []domain.Contract
}

// AlertContext bundles everything DetectCriticalAlerts needs beyond the
// supplier itself. All fields are optional in the sense that an empty slice
// simply yields fewer alerts; only Reference is required.
type AlertContext struct {
	Partners         []domain.Partner
	Contracts        []domain.Contract
	Sanctions        []domain.Sanction
	Donations        []domain.Donation
	RelatedSuppliers []RelatedSupplierContracts
	Strawman         StrawmanInputs
	Reference        time.Time
}

// donationMaterialityThreshold and contractMaterialityThreshold are the two
// joint thresholds DONATION_TO_CONTRACT_AWARDER requires (spec §4.1).
var (
	donationMaterialityThreshold = domain.MoneyFromCents(10_000_00)
	contractMaterialityThreshold = domain.MoneyFromCents(500_000_00)
)

// DetectCriticalAlerts is the sole entry point of this file. It never
// imports or calls anything from score.go.
func DetectCriticalAlerts(supplier domain.Supplier, ctx AlertContext) []domain.CriticalAlert {
	var alerts []domain.CriticalAlert
	alerts = append(alerts, detectPartnerIsPublicServant(supplier, ctx)...)
	alerts = append(alerts, detectSanctionedSupplierStillContracting(supplier, ctx)...)
	alerts = append(alerts, detectTenderRotation(supplier, ctx)...)
	alerts = append(alerts, detectDonationToContractAwarder(supplier, ctx)...)
	alerts = append(alerts, detectPartnerSanctionedElsewhere(supplier, ctx)...)
	alerts = append(alerts, detectStrawman(supplier, ctx)...)
	return dedupeAlerts(alerts)
}

func dedupeAlerts(alerts []domain.CriticalAlert) []domain.CriticalAlert {
	seen := make(map[domain.AlertKey]bool, len(alerts))
	out := make([]domain.CriticalAlert, 0, len(alerts))
	for _, a := range alerts {
		key := a.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

func newAlert(kind domain.AlertKind, severity domain.Severity, description, evidence string, partner *domain.PersonHash, when time.Time) domain.CriticalAlert {
	return domain.CriticalAlert{
		ID:          uuid.New(),
		Kind:        kind,
		Severity:    severity,
		Description: description,
		Evidence:    evidence,
		PartnerRef:  partner,
		DetectedAt:  when,
	}
}

func detectPartnerIsPublicServant(supplier domain.Supplier, ctx AlertContext) []domain.CriticalAlert {
	var alerts []domain.CriticalAlert
	for _, p := range ctx.Partners {
		if !p.IsPublicServant {
			continue
		}
		p := p
		desc := fmt.Sprintf("Partner %s is a public servant", p.Name)
		if p.EmployingBody != "" {
			desc += fmt.Sprintf(" (%s)", p.EmployingBody)
		}
		evidence := fmt.Sprintf("partner_hash=%s, name=%s", p.PersonHash, p.Name)
		if p.EmployingBody != "" {
			evidence += fmt.Sprintf(", employing_body=%s", p.EmployingBody)
		}
		alerts = append(alerts, newAlert(domain.AlertPartnerIsPublicServant, domain.SeverityCritical, desc, evidence, &p.PersonHash, ctx.Reference))
	}
	return alerts
}

func detectSanctionedSupplierStillContracting(supplier domain.Supplier, ctx AlertContext) []domain.CriticalAlert {
	var active []domain.Sanction
	for _, s := range ctx.Sanctions {
		if s.Active(ctx.Reference) {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return nil
	}

	var qualifying []domain.Contract
	for _, c := range ctx.Contracts {
		if c.SignedDate == nil {
			continue
		}
		for _, s := range active {
			if !c.SignedDate.Before(s.StartDate) {
				qualifying = append(qualifying, c)
				break
			}
		}
	}
	if len(qualifying) == 0 {
		return nil
	}

	kinds := make([]string, len(active))
	for i, s := range active {
		kinds[i] = string(s.Kind)
	}
	desc := fmt.Sprintf("Supplier has %d active sanction(s) and %d qualifying contract(s) signed since", len(active), len(qualifying))
	evidence := fmt.Sprintf("active_sanctions=%v, qualifying_contracts=%d", kinds, len(qualifying))
	return []domain.CriticalAlert{
		newAlert(domain.AlertSanctionedSupplierStillContracting, domain.SeverityCritical, desc, evidence, nil, ctx.Reference),
	}
}

func detectTenderRotation(supplier domain.Supplier, ctx AlertContext) []domain.CriticalAlert {
	if len(ctx.RelatedSuppliers) == 0 {
		return nil
	}
	ownTenders := make(map[domain.TenderNumber]bool)
	for _, c := range ctx.Contracts {
		if c.TenderNumber != "" {
			ownTenders[c.TenderNumber] = true
		}
	}
	if len(ownTenders) == 0 {
		return nil
	}

	var alerts []domain.CriticalAlert
	for _, rel := range ctx.RelatedSuppliers {
		var shared []domain.TenderNumber
		for _, c := range rel.Contracts {
			if c.TenderNumber != "" && ownTenders[c.TenderNumber] {
				shared = append(shared, c.TenderNumber)
			}
		}
		if len(shared) == 0 {
			continue
		}
		partner := rel.SharedPartner
		desc := fmt.Sprintf("Shares partner with supplier %s under the same tender(s)", rel.Supplier)
		evidence := fmt.Sprintf("other_supplier=%s, shared_partner_hash=%s, tenders=%v", rel.Supplier, partner, shared)
		alerts = append(alerts, newAlert(domain.AlertTenderRotation, domain.SeverityCritical, desc, evidence, &partner, ctx.Reference))
	}
	return alerts
}

func detectDonationToContractAwarder(supplier domain.Supplier, ctx AlertContext) []domain.CriticalAlert {
	var materialDonations []domain.Donation
	for _, d := range ctx.Donations {
		if d.IsMaterial(donationMaterialityThreshold) {
			materialDonations = append(materialDonations, d)
		}
	}
	if len(materialDonations) == 0 {
		return nil
	}

	for _, c := range ctx.Contracts {
		if !c.Value.GreaterThan(contractMaterialityThreshold) {
			continue
		}
		for _, d := range materialDonations {
			if d.OrgCodeAligned == "" || d.OrgCodeAligned != c.OrgCode {
				continue
			}
			desc := fmt.Sprintf("Donation of %s to %s (%s) aligns with a contract of %s from the same body", d.Amount, d.CandidateName, d.CandidateParty, c.Value)
			evidence := fmt.Sprintf("donation_amount=%s, candidate=%s, org_code=%s, contract_value=%s", d.Amount, d.CandidateName, c.OrgCode, c.Value)
			return []domain.CriticalAlert{
				newAlert(domain.AlertDonationToContractAwarder, domain.SeveritySevere, desc, evidence, nil, ctx.Reference),
			}
		}
	}
	return nil
}

func detectPartnerSanctionedElsewhere(supplier domain.Supplier, ctx AlertContext) []domain.CriticalAlert {
	var alerts []domain.CriticalAlert
	for _, p := range ctx.Partners {
		if !p.IsSanctioned {
			continue
		}
		p := p
		desc := fmt.Sprintf("Partner %s is sanctioned elsewhere", p.Name)
		evidence := fmt.Sprintf("partner_hash=%s, name=%s", p.PersonHash, p.Name)
		alerts = append(alerts, newAlert(domain.AlertPartnerSanctionedElsewhere, domain.SeveritySevere, desc, evidence, &p.PersonHash, ctx.Reference))
	}
	return alerts
}
