package sqlitestore

import (
	"context"
	"database/sql"
	"strings"

	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

// SupplierByID satisfies ports.SupplierReader.
func (s *Store) SupplierByID(ctx context.Context, id domain.CompanyID) (*domain.Supplier, error) {
	const q = `
		SELECT id, legal_name, opening_date, capital, primary_activity, activity_description,
		       street, number, municipality, state, postal_code, cadastral_status,
		       employee_count, shared_address_count
		FROM suppliers WHERE id = ?`

	row := s.db.QueryRowContext(ctx, q, id.String())

	var (
		idStr, legalName, primaryActivity, activityDesc, cadastral                    string
		street, number, municipality, state, postalCode                               string
		openingDate, capital                                                          sql.NullString
		employeeCount                                                                 sql.NullInt64
		sharedAddressCount                                                            int
	)
	err := row.Scan(&idStr, &legalName, &openingDate, &capital, &primaryActivity, &activityDesc,
		&street, &number, &municipality, &state, &postalCode, &cadastral,
		&employeeCount, &sharedAddressCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("SupplierByID", err)
	}

	opening, err := nullableDate(openingDate)
	if err != nil {
		return nil, storeErr("SupplierByID: opening_date", err)
	}
	cap, err := nullableMoney(capital)
	if err != nil {
		return nil, storeErr("SupplierByID: capital", err)
	}

	totalContracts, totalValue, err := s.supplierContractTotals(ctx, idStr)
	if err != nil {
		return nil, err
	}

	return &domain.Supplier{
		ID:                  id,
		LegalName:           legalName,
		OpeningDate:         opening,
		Capital:             cap,
		PrimaryActivity:     domain.CNAECode(primaryActivity),
		ActivityDescription: activityDesc,
		Address: &domain.Address{
			Street: street, Number: number, Municipality: municipality, State: state, PostalCode: postalCode,
		},
		CadastralStatus:    domain.CadastralStatus(cadastral),
		TotalContracts:     totalContracts,
		TotalContractValue: totalValue,
		SharedAddressCount: sharedAddressCount,
		EmployeeCount:      nullableInt(employeeCount),
	}, nil
}

func (s *Store) supplierContractTotals(ctx context.Context, supplierID string) (int, domain.Money, error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(CAST(value AS REAL)), 0) FROM contracts WHERE supplier_id = ?`
	var count int
	var total float64
	if err := s.db.QueryRowContext(ctx, q, supplierID).Scan(&count, &total); err != nil {
		return 0, domain.ZeroMoney, storeErr("supplierContractTotals", err)
	}
	m := domain.MoneyFromCents(int64(total * 100))
	return count, m, nil
}

// scoreAndAlertCounts reads the supplier's alert count from the alerts fact
// table. Its score result is always 0; summaryFor derives the ranking score
// itself by running the rule engine through computeScoreForSummary.
func (s *Store) scoreAndAlertCounts(ctx context.Context, supplierID string) (int, int, error) {
	var score int
	var alertCount int
	const qAlerts = `SELECT COUNT(*) FROM alerts WHERE supplier_id = ?`
	if err := s.db.QueryRowContext(ctx, qAlerts, supplierID).Scan(&alertCount); err != nil {
		return 0, 0, storeErr("scoreAndAlertCounts: alerts", err)
	}
	// No standalone score-fact table is modeled in this adapter's schema, so
	// score is left at 0 here.
	return score, alertCount, nil
}

// RankByScore satisfies ports.SupplierRanker: summaries ordered by score
// descending, then by total contracted value descending (§4.4).
func (s *Store) RankByScore(ctx context.Context, limit, offset int) ([]ports.SupplierSummary, error) {
	ids, err := s.allSupplierIDs(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]ports.SupplierSummary, 0, len(ids))
	for _, idStr := range ids {
		sum, err := s.summaryFor(ctx, idStr)
		if err != nil {
			return nil, err
		}
		if sum != nil {
			summaries = append(summaries, *sum)
		}
	}
	sortSummaries(summaries)
	return paginate(summaries, limit, offset), nil
}

func sortSummaries(xs []ports.SupplierSummary) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0; j-- {
			a, b := xs[j-1], xs[j]
			if less := summaryLess(b, a); !less {
				break
			}
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func summaryLess(a, b ports.SupplierSummary) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.TotalContractValue.Cmp(b.TotalContractValue) < 0
}

func paginate(xs []ports.SupplierSummary, limit, offset int) []ports.SupplierSummary {
	if offset >= len(xs) {
		return []ports.SupplierSummary{}
	}
	end := offset + limit
	if end > len(xs) || limit <= 0 {
		end = len(xs)
	}
	out := make([]ports.SupplierSummary, end-offset)
	copy(out, xs[offset:end])
	return out
}

func (s *Store) allSupplierIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM suppliers`)
	if err != nil {
		return nil, storeErr("allSupplierIDs", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storeErr("allSupplierIDs: scan", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("allSupplierIDs: rows", err)
	}
	return ids, nil
}

func (s *Store) summaryFor(ctx context.Context, idStr string) (*ports.SupplierSummary, error) {
	id, err := domain.NewCompanyID(idStr)
	if err != nil {
		return nil, storeErr("summaryFor: id", err)
	}
	supplier, err := s.SupplierByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}

	partners, err := s.PartnersOf(ctx, id)
	if err != nil {
		return nil, err
	}
	sanctions, err := s.SanctionsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	contracts, err := s.Contracts(ctx, ports.ContractFilter{SupplierID: &id}, 0, 0)
	if err != nil {
		return nil, err
	}

	plainPartners := make([]domain.Partner, len(partners))
	for i, p := range partners {
		plainPartners[i] = p.Partner
	}

	breakdown := computeScoreForSummary(*supplier, plainPartners, contracts, sanctions)
	_, alertCount, err := s.scoreAndAlertCounts(ctx, idStr)
	if err != nil {
		return nil, err
	}

	return &ports.SupplierSummary{
		ID:                 id,
		LegalName:          supplier.LegalName,
		Score:              breakdown.Total(),
		Band:               breakdown.Band(),
		AlertCount:         alertCount,
		TotalContractValue: supplier.TotalContractValue,
	}, nil
}

// SearchByNameOrID satisfies ports.SupplierSearcher (§4.4: identifier match
// first when the query's digits, with every other character dropped, form a
// checksum-valid company id, else a case-folded substring match on legal
// name).
func (s *Store) SearchByNameOrID(ctx context.Context, query string, limit int) ([]ports.SupplierSummary, error) {
	if id, err := domain.NewCompanyID(query); err == nil {
		sum, err := s.summaryFor(ctx, id.String())
		if err != nil {
			return nil, err
		}
		if sum == nil {
			return []ports.SupplierSummary{}, nil
		}
		return []ports.SupplierSummary{*sum}, nil
	}

	ids, err := s.allSupplierIDs(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	var matched []ports.SupplierSummary
	for _, idStr := range ids {
		var legalName string
		if err := s.db.QueryRowContext(ctx, `SELECT legal_name FROM suppliers WHERE id = ?`, idStr).Scan(&legalName); err != nil {
			return nil, storeErr("SearchByNameOrID: legal_name", err)
		}
		if !strings.Contains(strings.ToLower(legalName), needle) {
			continue
		}
		sum, err := s.summaryFor(ctx, idStr)
		if err != nil {
			return nil, err
		}
		if sum != nil {
			matched = append(matched, *sum)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}
	if matched == nil {
		matched = []ports.SupplierSummary{}
	}
	return matched, nil
}

// CountSuppliers satisfies ports.SupplierCounter.
func (s *Store) CountSuppliers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&n); err != nil {
		return 0, storeErr("CountSuppliers", err)
	}
	return n, nil
}
