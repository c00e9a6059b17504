package sqlitestore

import (
	"context"
	"database/sql"

	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

// OrgDashboard satisfies ports.OrgDashboardReader: aggregate counts plus
// top-10 suppliers for the body by total contracted value (§4.4).
func (s *Store) OrgDashboard(ctx context.Context, orgCode domain.GovOrgCode) (*ports.OrgDashboard, error) {
	var contractCount int
	var total sql.NullFloat64
	const qAgg = `SELECT COUNT(*), SUM(CAST(value AS REAL)) FROM contracts WHERE org_code = ?`
	if err := s.db.QueryRowContext(ctx, qAgg, string(orgCode)).Scan(&contractCount, &total); err != nil {
		return nil, storeErr("OrgDashboard: aggregate", err)
	}
	if contractCount == 0 {
		return nil, nil
	}

	const qSuppliers = `
		SELECT supplier_id, SUM(CAST(value AS REAL)) AS total
		FROM contracts WHERE org_code = ?
		GROUP BY supplier_id
		ORDER BY total DESC
		LIMIT 10`
	rows, err := s.db.QueryContext(ctx, qSuppliers, string(orgCode))
	if err != nil {
		return nil, storeErr("OrgDashboard: top suppliers", err)
	}
	defer rows.Close()

	var top []ports.SupplierSummary
	for rows.Next() {
		var supplierID string
		var supplierTotal float64
		if err := rows.Scan(&supplierID, &supplierTotal); err != nil {
			return nil, storeErr("OrgDashboard: scan", err)
		}
		sum, err := s.summaryFor(ctx, supplierID)
		if err != nil {
			return nil, err
		}
		if sum != nil {
			top = append(top, *sum)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("OrgDashboard: rows", err)
	}
	if top == nil {
		top = []ports.SupplierSummary{}
	}

	return &ports.OrgDashboard{
		OrgCode:       orgCode,
		ContractCount: contractCount,
		TotalValue:    domain.MoneyFromCents(int64(total.Float64 * 100)),
		TopSuppliers:  top,
	}, nil
}
