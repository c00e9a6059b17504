package sqlitestore

import (
	"context"

	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

const (
	nodeKindCompany = "company"
	nodeKindPerson  = "person"
	edgeKindOwns    = "owns-share-of"
)

type graphEdgeCandidate struct {
	supplierID string
	personHash string
}

// GraphTwoHops satisfies ports.GraphReader: a bounded BFS over the bipartite
// supplier/partner graph (§4.3). The candidate traversal is computed in full
// BFS order first (root always first), then truncated to maxNodes; truncated
// is true exactly when the full traversal would have produced more nodes.
func (s *Store) GraphTwoHops(ctx context.Context, id domain.CompanyID, maxNodes int) ([]ports.GraphNode, []ports.GraphEdge, bool, error) {
	root, err := s.SupplierByID(ctx, id)
	if err != nil {
		return nil, nil, false, err
	}
	if root == nil {
		return nil, nil, false, nil
	}
	if maxNodes <= 0 {
		maxNodes = 50
	}

	visitedCompanies := map[string]bool{id.String(): true}
	visitedPersons := map[string]bool{}

	var order []ports.GraphNode
	var edges []graphEdgeCandidate

	rootNode, err := s.companyNode(ctx, id)
	if err != nil {
		return nil, nil, false, err
	}
	order = append(order, rootNode)

	level1Companies, err := s.expandPartnerLevel(ctx, []string{id.String()}, visitedCompanies, visitedPersons, &order, &edges)
	if err != nil {
		return nil, nil, false, err
	}

	if _, err := s.expandPartnerLevel(ctx, level1Companies, visitedCompanies, visitedPersons, &order, &edges); err != nil {
		return nil, nil, false, err
	}

	truncated := len(order) > maxNodes
	kept := order
	if truncated {
		kept = order[:maxNodes]
	}
	keptIDs := make(map[string]bool, len(kept))
	for _, n := range kept {
		keptIDs[n.ID] = true
	}

	var outEdges []ports.GraphEdge
	for _, e := range edges {
		if !keptIDs[e.supplierID] || !keptIDs[e.personHash] {
			continue
		}
		outEdges = append(outEdges, ports.GraphEdge{
			Source: e.personHash,
			Target: e.supplierID,
			Kind:   edgeKindOwns,
			Label:  edgeKindOwns,
		})
	}
	if outEdges == nil {
		outEdges = []ports.GraphEdge{}
	}

	return kept, outEdges, truncated, nil
}

// expandPartnerLevel adds, in order: the partners of each supplier in
// supplierIDs not already visited, then every other supplier those partners
// belong to, not already visited. It returns the newly-added supplier ids,
// the next level's expansion frontier.
func (s *Store) expandPartnerLevel(ctx context.Context, supplierIDs []string, visitedCompanies, visitedPersons map[string]bool, order *[]ports.GraphNode, edges *[]graphEdgeCandidate) ([]string, error) {
	var newPersons []string
	for _, sid := range supplierIDs {
		cid, err := domain.NewCompanyID(sid)
		if err != nil {
			return nil, storeErr("expandPartnerLevel: supplier id", err)
		}
		links, err := s.PartnersOf(ctx, cid)
		if err != nil {
			return nil, err
		}
		for _, link := range links {
			ph := string(link.PersonHash)
			*edges = append(*edges, graphEdgeCandidate{supplierID: sid, personHash: ph})
			if visitedPersons[ph] {
				continue
			}
			visitedPersons[ph] = true
			*order = append(*order, ports.GraphNode{ID: ph, Kind: nodeKindPerson, Label: link.Name})
			newPersons = append(newPersons, ph)
		}
	}

	var newCompanies []string
	for _, ph := range newPersons {
		suppliers, err := s.suppliersOfPartner(ctx, ph)
		if err != nil {
			return nil, err
		}
		for _, other := range suppliers {
			*edges = append(*edges, graphEdgeCandidate{supplierID: other, personHash: ph})
			if visitedCompanies[other] {
				continue
			}
			visitedCompanies[other] = true
			cid, err := domain.NewCompanyID(other)
			if err != nil {
				return nil, storeErr("expandPartnerLevel: other supplier id", err)
			}
			node, err := s.companyNode(ctx, cid)
			if err != nil {
				return nil, err
			}
			*order = append(*order, node)
			newCompanies = append(newCompanies, other)
		}
	}
	return newCompanies, nil
}

// RelatedSuppliers satisfies ports.RelatedSupplierReader: every other
// supplier sharing at least one partner with id, paired with that
// supplier's contracts, for TENDER_ROTATION detection.
func (s *Store) RelatedSuppliers(ctx context.Context, id domain.CompanyID) ([]ports.RelatedSupplier, error) {
	links, err := s.PartnersOf(ctx, id)
	if err != nil {
		return nil, err
	}

	var out []ports.RelatedSupplier
	seen := map[string]bool{}
	for _, link := range links {
		others, err := s.suppliersOfPartner(ctx, string(link.PersonHash))
		if err != nil {
			return nil, err
		}
		for _, otherID := range others {
			if otherID == id.String() || seen[otherID] {
				continue
			}
			seen[otherID] = true
			otherCID, err := domain.NewCompanyID(otherID)
			if err != nil {
				return nil, storeErr("RelatedSuppliers: other id", err)
			}
			contracts, err := s.Contracts(ctx, ports.ContractFilter{SupplierID: &otherCID}, 0, 0)
			if err != nil {
				return nil, err
			}
			out = append(out, ports.RelatedSupplier{
				Supplier:      otherCID,
				SharedPartner: link.PersonHash,
				Contracts:     contracts,
			})
		}
	}
	if out == nil {
		out = []ports.RelatedSupplier{}
	}
	return out, nil
}

func (s *Store) suppliersOfPartner(ctx context.Context, personHash string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT supplier_id FROM ownership_links WHERE person_hash = ?`, personHash)
	if err != nil {
		return nil, storeErr("suppliersOfPartner", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			return nil, storeErr("suppliersOfPartner: scan", err)
		}
		out = append(out, sid)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("suppliersOfPartner: rows", err)
	}
	return out, nil
}

func (s *Store) companyNode(ctx context.Context, id domain.CompanyID) (ports.GraphNode, error) {
	supplier, err := s.SupplierByID(ctx, id)
	if err != nil {
		return ports.GraphNode{}, err
	}
	if supplier == nil {
		return ports.GraphNode{ID: id.String(), Kind: nodeKindCompany, Label: id.String()}, nil
	}

	partners, err := s.PartnersOf(ctx, id)
	if err != nil {
		return ports.GraphNode{}, err
	}
	sanctions, err := s.SanctionsFor(ctx, id)
	if err != nil {
		return ports.GraphNode{}, err
	}
	contracts, err := s.Contracts(ctx, ports.ContractFilter{SupplierID: &id}, 0, 0)
	if err != nil {
		return ports.GraphNode{}, err
	}
	plainPartners := make([]domain.Partner, len(partners))
	for i, p := range partners {
		plainPartners[i] = p.Partner
	}
	breakdown := computeScoreForSummary(*supplier, plainPartners, contracts, sanctions)
	score := breakdown.Total()

	var alertCount int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts WHERE supplier_id = ?`, id.String()).Scan(&alertCount); err != nil {
		return ports.GraphNode{}, storeErr("companyNode: alert count", err)
	}

	return ports.GraphNode{
		ID:         id.String(),
		Kind:       nodeKindCompany,
		Label:      supplier.LegalName,
		Score:      &score,
		AlertCount: &alertCount,
	}, nil
}
