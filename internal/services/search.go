package services

import (
	"context"
	"strings"

	"supplierwatch/internal/ports"
)

// SearchService resolves a free-text or identifier query (§4.4). Query
// length validation happens at the HTTP boundary (§6); this layer only
// normalizes.
type SearchService struct {
	repo ports.SupplierSearcher
}

func NewSearchService(repo ports.SupplierSearcher) *SearchService {
	return &SearchService{repo: repo}
}

func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]ports.SupplierSummary, error) {
	normalized := strings.TrimSpace(query)
	return s.repo.SearchByNameOrID(ctx, normalized, limit)
}
