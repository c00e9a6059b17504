package services

import (
	"context"

	"supplierwatch/internal/apperr"
	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

// OrgDashboardService exposes the per-body aggregate view (§4.4).
type OrgDashboardService struct {
	repo ports.OrgDashboardReader
}

func NewOrgDashboardService(repo ports.OrgDashboardReader) *OrgDashboardService {
	return &OrgDashboardService{repo: repo}
}

func (o *OrgDashboardService) Get(ctx context.Context, orgCode domain.GovOrgCode) (*ports.OrgDashboard, error) {
	dash, err := o.repo.OrgDashboard(ctx, orgCode)
	if err != nil {
		return nil, err
	}
	if dash == nil {
		return nil, apperr.NotFound("government body not found")
	}
	return dash, nil
}
