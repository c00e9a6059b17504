package services

import (
	"context"

	"supplierwatch/internal/ports"
)

// StatsService exposes headline counts plus per-source freshness (§4.4).
type StatsService struct {
	repo ports.StatsReader
}

func NewStatsService(repo ports.StatsReader) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Get(ctx context.Context) (ports.Stats, error) {
	return s.repo.StatsRollup(ctx)
}
