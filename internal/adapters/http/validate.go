package httpadapter

import (
	"net/http"
	"strconv"

	"supplierwatch/internal/apperr"
	"supplierwatch/internal/domain"
)

const (
	defaultLimit  = 20
	maxLimit      = 100
	minLimit      = 1
	minQueryLen   = 1
	maxQueryLen   = 200
)

var validAlertKinds = map[string]domain.AlertKind{
	string(domain.AlertPartnerIsPublicServant):             domain.AlertPartnerIsPublicServant,
	string(domain.AlertSanctionedSupplierStillContracting): domain.AlertSanctionedSupplierStillContracting,
	string(domain.AlertTenderRotation):                     domain.AlertTenderRotation,
	string(domain.AlertDonationToContractAwarder):          domain.AlertDonationToContractAwarder,
	string(domain.AlertPartnerSanctionedElsewhere):         domain.AlertPartnerSanctionedElsewhere,
	string(domain.AlertStrawman):                           domain.AlertStrawman,
}

var validExportFormats = map[string]bool{"json": true, "csv": true, "pdf": true}

// parsePagination reads limit/offset query params with the §6 bounds:
// limit in [1,100] default 20, offset >= 0 default 0.
func parsePagination(r *http.Request) (limit, offset int, err error) {
	limit = defaultLimit
	offset = 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < minLimit || limit > maxLimit {
			return 0, 0, apperr.InputInvalid("limit must be an integer in [1,100]", err)
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, apperr.InputInvalid("offset must be a non-negative integer", err)
		}
	}
	return limit, offset, nil
}

func parseCompanyID(raw string) (domain.CompanyID, error) {
	id, err := domain.NewCompanyID(raw)
	if err != nil {
		return domain.CompanyID{}, apperr.InputInvalid("invalid company identifier", err)
	}
	return id, nil
}

func parseAlertKind(raw string) (domain.AlertKind, error) {
	kind, ok := validAlertKinds[raw]
	if !ok {
		return "", apperr.InputInvalid("unknown alert kind", nil)
	}
	return kind, nil
}

func parseSearchQuery(raw string) (string, error) {
	if len(raw) < minQueryLen || len(raw) > maxQueryLen {
		return "", apperr.InputInvalid("q must have length between 1 and 200", nil)
	}
	return raw, nil
}

func parseExportFormat(raw string) (string, error) {
	if raw == "" {
		raw = "json"
	}
	if !validExportFormats[raw] {
		return "", apperr.InputInvalid("format must be one of json, csv, pdf", nil)
	}
	return raw, nil
}

func parseOrgCode(raw string) (domain.GovOrgCode, error) {
	if err := domain.ValidateOpaque("orgCode", raw); err != nil {
		return "", apperr.InputInvalid("invalid government body code", err)
	}
	return domain.GovOrgCode(raw), nil
}
