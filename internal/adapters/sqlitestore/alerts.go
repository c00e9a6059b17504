package sqlitestore

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

// AlertFeed satisfies ports.AlertFeedReader, newest first.
func (s *Store) AlertFeed(ctx context.Context, limit, offset int) ([]ports.AlertFeedItem, error) {
	return s.alertFeed(ctx, "", limit, offset)
}

// AlertFeedByKind satisfies ports.AlertFeedReader filtered to one kind.
func (s *Store) AlertFeedByKind(ctx context.Context, kind domain.AlertKind, limit, offset int) ([]ports.AlertFeedItem, error) {
	return s.alertFeed(ctx, kind, limit, offset)
}

func (s *Store) alertFeed(ctx context.Context, kind domain.AlertKind, limit, offset int) ([]ports.AlertFeedItem, error) {
	q := `
		SELECT a.id, a.supplier_id, sup.legal_name, a.kind, a.severity, a.description, a.evidence,
		       a.partner_hash, COALESCE(p.name, ''), a.detected_at
		FROM alerts a
		JOIN suppliers sup ON sup.id = a.supplier_id
		LEFT JOIN partners p ON p.person_hash = a.partner_hash
		WHERE 1=1`
	var args []any
	if kind != "" {
		q += ` AND a.kind = ?`
		args = append(args, string(kind))
	}
	q += ` ORDER BY a.detected_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storeErr("alertFeed", err)
	}
	defer rows.Close()

	var out []ports.AlertFeedItem
	for rows.Next() {
		var id, supplierID, legalName, alertKind, severity, description, evidence, partnerName, detectedAt string
		var partnerHash sql.NullString
		if err := rows.Scan(&id, &supplierID, &legalName, &alertKind, &severity, &description, &evidence,
			&partnerHash, &partnerName, &detectedAt); err != nil {
			return nil, storeErr("alertFeed: scan", err)
		}
		sid, err := domain.NewCompanyID(supplierID)
		if err != nil {
			return nil, storeErr("alertFeed: supplier id", err)
		}
		alertID, err := uuid.Parse(id)
		if err != nil {
			return nil, storeErr("alertFeed: alert id", err)
		}
		detected, err := time.Parse(time.RFC3339, detectedAt)
		if err != nil {
			return nil, storeErr("alertFeed: detected_at", err)
		}
		var partnerRef *domain.PersonHash
		if partnerHash.Valid && partnerHash.String != "" {
			ph := domain.PersonHash(partnerHash.String)
			partnerRef = &ph
		}

		out = append(out, ports.AlertFeedItem{
			Alert: domain.CriticalAlert{
				ID:          alertID,
				Kind:        domain.AlertKind(alertKind),
				Severity:    domain.Severity(severity),
				Description: description,
				Evidence:    evidence,
				PartnerRef:  partnerRef,
				DetectedAt:  detected,
			},
			SupplierID:   sid,
			SupplierName: legalName,
			PartnerName:  partnerName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("alertFeed: rows", err)
	}
	if out == nil {
		out = []ports.AlertFeedItem{}
	}
	return out, nil
}
