package services

import (
	"context"

	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

// AlertFeedService exposes the pre-computed critical-alert feed (§4.4),
// optionally filtered to one kind.
type AlertFeedService struct {
	repo ports.AlertFeedReader
}

func NewAlertFeedService(repo ports.AlertFeedReader) *AlertFeedService {
	return &AlertFeedService{repo: repo}
}

func (a *AlertFeedService) Feed(ctx context.Context, limit, offset int) ([]ports.AlertFeedItem, error) {
	return a.repo.AlertFeed(ctx, limit, offset)
}

func (a *AlertFeedService) FeedByKind(ctx context.Context, kind domain.AlertKind, limit, offset int) ([]ports.AlertFeedItem, error) {
	return a.repo.AlertFeedByKind(ctx, kind, limit, offset)
}
