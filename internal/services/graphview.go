package services

import (
	"context"

	"supplierwatch/internal/apperr"
	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

// GraphView is the two-hop ownership graph projection (§4.4).
type GraphView struct {
	Nodes     []ports.GraphNode `json:"nodes"`
	Edges     []ports.GraphEdge `json:"edges"`
	Truncated bool              `json:"truncated"`
}

// GraphService wraps the bounded two-hop traversal.
type GraphService struct {
	repo     ports.GraphReader
	maxNodes int
}

// NewGraphService builds a GraphService. defaultMaxNodes is used when a
// caller passes 0 (the §4.3 default of 50).
func NewGraphService(repo ports.GraphReader, defaultMaxNodes int) *GraphService {
	if defaultMaxNodes <= 0 {
		defaultMaxNodes = 50
	}
	return &GraphService{repo: repo, maxNodes: defaultMaxNodes}
}

func (g *GraphService) View(ctx context.Context, id domain.CompanyID, maxNodes int) (*GraphView, error) {
	if maxNodes <= 0 {
		maxNodes = g.maxNodes
	}
	nodes, edges, truncated, err := g.repo.GraphTwoHops(ctx, id, maxNodes)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		return nil, apperr.NotFound("supplier not found")
	}
	return &GraphView{Nodes: nodes, Edges: edges, Truncated: truncated}, nil
}
