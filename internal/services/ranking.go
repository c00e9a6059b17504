package services

import (
	"context"

	"supplierwatch/internal/ports"
)

// RankingService orders suppliers by score descending, then by total
// contracted value descending (§4.4). The ordering itself is the
// repository's responsibility (ports.SupplierRanker); this service passes
// limit and offset through unchanged.
type RankingService struct {
	repo ports.SupplierRanker
}

func NewRankingService(repo ports.SupplierRanker) *RankingService {
	return &RankingService{repo: repo}
}

func (r *RankingService) Rank(ctx context.Context, limit, offset int) ([]ports.SupplierSummary, error) {
	return r.repo.RankByScore(ctx, limit, offset)
}
