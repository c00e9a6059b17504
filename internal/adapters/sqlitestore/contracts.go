package sqlitestore

import (
	"context"
	"database/sql"

	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

// Contracts satisfies ports.ContractReader. Both filter fields are optional;
// limit<=0 means "no limit" (used internally by summary assembly).
func (s *Store) Contracts(ctx context.Context, filter ports.ContractFilter, limit, offset int) ([]domain.Contract, error) {
	q := `SELECT supplier_id, org_code, value, subject, tender_number, signed_date, valid_until FROM contracts WHERE 1=1`
	var args []any
	if filter.SupplierID != nil {
		q += ` AND supplier_id = ?`
		args = append(args, filter.SupplierID.String())
	}
	if filter.OrgCode != nil {
		q += ` AND org_code = ?`
		args = append(args, string(*filter.OrgCode))
	}
	q += ` ORDER BY signed_date DESC`
	if limit > 0 {
		q += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storeErr("Contracts", err)
	}
	defer rows.Close()

	var out []domain.Contract
	for rows.Next() {
		var supplierID, orgCode, value, subject, tenderNumber string
		var signedDate, validUntil sql.NullString
		if err := rows.Scan(&supplierID, &orgCode, &value, &subject, &tenderNumber, &signedDate, &validUntil); err != nil {
			return nil, storeErr("Contracts: scan", err)
		}
		id, err := domain.NewCompanyID(supplierID)
		if err != nil {
			return nil, storeErr("Contracts: supplier id", err)
		}
		money, err := domain.MoneyFromString(value)
		if err != nil {
			return nil, storeErr("Contracts: value", err)
		}
		signed, err := nullableDate(signedDate)
		if err != nil {
			return nil, storeErr("Contracts: signed_date", err)
		}
		valid, err := nullableDate(validUntil)
		if err != nil {
			return nil, storeErr("Contracts: valid_until", err)
		}
		out = append(out, domain.Contract{
			Supplier:     id,
			OrgCode:      domain.GovOrgCode(orgCode),
			Value:        money,
			Subject:      subject,
			TenderNumber: domain.TenderNumber(tenderNumber),
			SignedDate:   signed,
			ValidUntil:   valid,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("Contracts: rows", err)
	}
	if out == nil {
		out = []domain.Contract{}
	}
	return out, nil
}
