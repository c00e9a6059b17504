package sqlitestore

import (
	"context"
	"database/sql"

	"supplierwatch/internal/domain"
)

// SanctionsFor satisfies ports.SanctionReader.
func (s *Store) SanctionsFor(ctx context.Context, id domain.CompanyID) ([]domain.Sanction, error) {
	const q = `SELECT kind, sanctioning_body, reason, start_date, end_date FROM sanctions WHERE supplier_id = ?`
	rows, err := s.db.QueryContext(ctx, q, id.String())
	if err != nil {
		return nil, storeErr("SanctionsFor", err)
	}
	defer rows.Close()

	var out []domain.Sanction
	for rows.Next() {
		var kind, body, reason, startDate string
		var endDate sql.NullString
		if err := rows.Scan(&kind, &body, &reason, &startDate, &endDate); err != nil {
			return nil, storeErr("SanctionsFor: scan", err)
		}
		start, err := parseDate(startDate)
		if err != nil {
			return nil, storeErr("SanctionsFor: start_date", err)
		}
		end, err := nullableDate(endDate)
		if err != nil {
			return nil, storeErr("SanctionsFor: end_date", err)
		}
		out = append(out, domain.Sanction{
			Kind:            domain.SanctionKind(kind),
			SanctioningBody: body,
			Reason:          reason,
			StartDate:       start,
			EndDate:         end,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("SanctionsFor: rows", err)
	}
	if out == nil {
		out = []domain.Sanction{}
	}
	return out, nil
}
