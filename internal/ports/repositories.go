// Package ports defines capability-shaped repository contracts. Each
// consumer names exactly the operations it needs; the analytical store
// adapter satisfies the union. No inheritance tree, no generic repository
// interface — small interfaces per capability, mirroring the teacher's
// internal/ports layout.
package ports

import (
	"context"
	"time"

	"supplierwatch/internal/domain"
)

// SupplierSummary is a row-shaped projection used by ranking, search, and
// org-dashboard results.
type SupplierSummary struct {
	ID                 domain.CompanyID
	LegalName          string
	Score              int
	Band               domain.RiskBand
	AlertCount         int
	TotalContractValue domain.Money
}

// PartnerLink is a Partner merged with its OwnershipLink attributes, as
// returned by PartnersOf.
type PartnerLink struct {
	domain.Partner
	Qualification string
	EntryDate     *time.Time
	ExitDate      *time.Time
	CapitalShare  domain.Share
}

// SupplierReader fetches a single supplier by identity.
type SupplierReader interface {
	SupplierByID(ctx context.Context, id domain.CompanyID) (*domain.Supplier, error)
}

// SupplierRanker returns suppliers ordered by score descending, then by
// total contracted value descending.
type SupplierRanker interface {
	RankByScore(ctx context.Context, limit, offset int) ([]SupplierSummary, error)
}

// SupplierSearcher resolves a free-text or identifier query.
type SupplierSearcher interface {
	SearchByNameOrID(ctx context.Context, query string, limit int) ([]SupplierSummary, error)
}

// SupplierCounter reports the total supplier population.
type SupplierCounter interface {
	CountSuppliers(ctx context.Context) (int, error)
}

// ContractFilter narrows ContractReader.Contracts. Both fields are optional.
type ContractFilter struct {
	SupplierID *domain.CompanyID
	OrgCode    *domain.GovOrgCode
}

// ContractReader fetches contracts, optionally filtered.
type ContractReader interface {
	Contracts(ctx context.Context, filter ContractFilter, limit, offset int) ([]domain.Contract, error)
}

// SanctionReader fetches a supplier's sanctions.
type SanctionReader interface {
	SanctionsFor(ctx context.Context, id domain.CompanyID) ([]domain.Sanction, error)
}

// PartnerReader fetches a supplier's partners with their ownership-link
// attributes.
type PartnerReader interface {
	PartnersOf(ctx context.Context, id domain.CompanyID) ([]PartnerLink, error)
}

// DonationReader fetches donations linked to a supplier (directly or via a
// partner).
type DonationReader interface {
	DonationsFor(ctx context.Context, id domain.CompanyID) ([]domain.Donation, error)
}

// RelatedSupplier describes another supplier sharing a partner with the
// supplier under query, along with that supplier's contracts — the minimal
// view TENDER_ROTATION needs (§4.1).
type RelatedSupplier struct {
	Supplier      domain.CompanyID
	SharedPartner domain.PersonHash
	Contracts     []domain.Contract
}

// RelatedSupplierReader fetches the suppliers sharing at least one partner
// with id, for tender-rotation detection.
type RelatedSupplierReader interface {
	RelatedSuppliers(ctx context.Context, id domain.CompanyID) ([]RelatedSupplier, error)
}

// AlertFeedItem is a single row of the alert feed, already joined with its
// owning supplier and optional partner.
type AlertFeedItem struct {
	Alert        domain.CriticalAlert
	SupplierID   domain.CompanyID
	SupplierName string
	PartnerName  string
}

// AlertFeedReader fetches pre-computed critical-alert rows ordered by
// detection timestamp descending.
type AlertFeedReader interface {
	AlertFeed(ctx context.Context, limit, offset int) ([]AlertFeedItem, error)
	AlertFeedByKind(ctx context.Context, kind domain.AlertKind, limit, offset int) ([]AlertFeedItem, error)
}

// SourceFreshness describes one upstream source table's last refresh.
type SourceFreshness struct {
	SourceName string
	LastUpdate *time.Time
	RowCount   int
}

// Stats is the headline-counts-plus-freshness rollup.
type Stats struct {
	TotalSuppliers int
	TotalContracts int
	TotalAlerts    int
	Sources        []SourceFreshness
}

// StatsReader fetches the stats rollup.
type StatsReader interface {
	StatsRollup(ctx context.Context) (Stats, error)
}

// OrgDashboard is the aggregate view for one government body.
type OrgDashboard struct {
	OrgCode       domain.GovOrgCode
	ContractCount int
	TotalValue    domain.Money
	TopSuppliers  []SupplierSummary
}

// OrgDashboardReader fetches the dashboard for one government body.
type OrgDashboardReader interface {
	OrgDashboard(ctx context.Context, orgCode domain.GovOrgCode) (*OrgDashboard, error)
}

// GraphNode is one node of a two-hop ownership graph.
type GraphNode struct {
	ID         string // CompanyID digits, or PersonHash for partner nodes
	Kind       string // "company" | "person"
	Label      string
	Score      *int
	AlertCount *int
}

// GraphEdge is one edge of a two-hop ownership graph. Kind is always
// "owns-share-of".
type GraphEdge struct {
	Source string
	Target string
	Kind   string
	Label  string
}

// GraphReader performs the bounded two-hop ownership-graph traversal.
type GraphReader interface {
	GraphTwoHops(ctx context.Context, id domain.CompanyID, maxNodes int) (nodes []GraphNode, edges []GraphEdge, truncated bool, err error)
}
