// Package services holds thin orchestrators: they fan out to repositories,
// call the pure rule engine on the assembled data, and shape response
// records. No business rule lives here — that belongs to
// internal/domain/ruleengine.
package services

import (
	"context"
	"time"

	"supplierwatch/internal/apperr"
	"supplierwatch/internal/domain"
	"supplierwatch/internal/domain/ruleengine"
	"supplierwatch/internal/ports"
)

// Dossier is the complete per-supplier view assembled by DossierService.
type Dossier struct {
	Supplier    domain.Supplier           `json:"supplier"`
	Contracts   []domain.Contract         `json:"contracts"`
	Partners    []ports.PartnerLink       `json:"partners"`
	Sanctions   []domain.Sanction         `json:"sanctions"`
	Donations   []domain.Donation         `json:"donations"`
	Alerts      []domain.CriticalAlert    `json:"alerts"`
	Score       domain.ScoreBreakdown     `json:"score"`
	Disclaimer  string                    `json:"disclaimer"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

// Clock abstracts "now" so tests can pin the reference time the rule engine
// sees, matching §4.1/§4.2's requirement that the timestamp be supplied by
// the caller.
type Clock func() time.Time

// DossierRepos is the union of repository capabilities DossierService needs.
type DossierRepos interface {
	ports.SupplierReader
	ports.ContractReader
	ports.PartnerReader
	ports.SanctionReader
	ports.DonationReader
	ports.RelatedSupplierReader
}

// DossierService assembles the complete supplier view: identity, cadastral
// data, contracts, partners, sanctions, donations, alerts, score, and a
// disclaimer string (§4.4).
type DossierService struct {
	repos      DossierRepos
	disclaimer string
	now        Clock
}

// NewDossierService constructs a DossierService. disclaimer is sourced from
// config.Settings.Disclaimer; now defaults to time.Now in UTC when nil.
func NewDossierService(repos DossierRepos, disclaimer string, now Clock) *DossierService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &DossierService{repos: repos, disclaimer: disclaimer, now: now}
}

// Get assembles the dossier for id. Returns apperr.NotFound when the
// supplier does not exist.
func (d *DossierService) Get(ctx context.Context, id domain.CompanyID) (*Dossier, error) {
	supplier, err := d.repos.SupplierByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperr.NotFound("supplier not found")
	}

	contracts, err := d.repos.Contracts(ctx, ports.ContractFilter{SupplierID: &id}, 0, 0)
	if err != nil {
		return nil, err
	}
	partnerLinks, err := d.repos.PartnersOf(ctx, id)
	if err != nil {
		return nil, err
	}
	sanctions, err := d.repos.SanctionsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	donations, err := d.repos.DonationsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := d.repos.RelatedSuppliers(ctx, id)
	if err != nil {
		return nil, err
	}

	plainPartners := make([]domain.Partner, len(partnerLinks))
	for i, p := range partnerLinks {
		plainPartners[i] = p.Partner
	}
	relatedCtx := make([]ruleengine.RelatedSupplierContracts, len(related))
	for i, r := range related {
		relatedCtx[i] = ruleengine.RelatedSupplierContracts{
			Supplier:      r.Supplier,
			SharedPartner: r.SharedPartner,
			Contracts:     r.Contracts,
		}
	}

	reference := d.now()

	alerts := ruleengine.DetectCriticalAlerts(*supplier, ruleengine.AlertContext{
		Partners:         plainPartners,
		Contracts:        contracts,
		Sanctions:        sanctions,
		Donations:        donations,
		RelatedSuppliers: relatedCtx,
		Reference:        reference,
	})
	score := ruleengine.ComputeCumulativeScore(*supplier, ruleengine.ScoreContext{
		Partners:  plainPartners,
		Contracts: contracts,
		Sanctions: sanctions,
		Reference: reference,
	})

	return &Dossier{
		Supplier:    *supplier,
		Contracts:   contracts,
		Partners:    partnerLinks,
		Sanctions:   sanctions,
		Donations:   donations,
		Alerts:      alerts,
		Score:       score,
		Disclaimer:  d.disclaimer,
		GeneratedAt: reference,
	}, nil
}
