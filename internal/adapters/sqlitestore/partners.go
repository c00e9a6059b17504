package sqlitestore

import (
	"context"
	"database/sql"

	"supplierwatch/internal/domain"
	"supplierwatch/internal/ports"
)

// PartnersOf satisfies ports.PartnerReader: partners merged with their
// ownership-link attributes for one supplier.
func (s *Store) PartnersOf(ctx context.Context, id domain.CompanyID) ([]ports.PartnerLink, error) {
	const q = `
		SELECT p.person_hash, p.name, p.is_public_servant, p.employing_body, p.is_sanctioned, p.gov_supplier_count,
		       l.qualification, l.entry_date, l.exit_date, l.capital_share
		FROM ownership_links l
		JOIN partners p ON p.person_hash = l.person_hash
		WHERE l.supplier_id = ?`

	rows, err := s.db.QueryContext(ctx, q, id.String())
	if err != nil {
		return nil, storeErr("PartnersOf", err)
	}
	defer rows.Close()

	var out []ports.PartnerLink
	for rows.Next() {
		var personHash, name, employingBody, qualification, entryDate, shareStr string
		var isPublicServant, isSanctioned bool
		var govSupplierCount int
		var exitDate sql.NullString
		if err := rows.Scan(&personHash, &name, &isPublicServant, &employingBody, &isSanctioned, &govSupplierCount,
			&qualification, &entryDate, &exitDate, &shareStr); err != nil {
			return nil, storeErr("PartnersOf: scan", err)
		}
		entry, err := parseDate(entryDate)
		if err != nil {
			return nil, storeErr("PartnersOf: entry_date", err)
		}
		exit, err := nullableDate(exitDate)
		if err != nil {
			return nil, storeErr("PartnersOf: exit_date", err)
		}
		shareDec, err := decimalFromString(shareStr)
		if err != nil {
			return nil, storeErr("PartnersOf: capital_share", err)
		}
		share, err := domain.NewShare(shareDec)
		if err != nil {
			return nil, storeErr("PartnersOf: capital_share bounds", err)
		}

		out = append(out, ports.PartnerLink{
			Partner: domain.Partner{
				PersonHash:       domain.PersonHash(personHash),
				Name:             name,
				Qualification:    qualification,
				IsPublicServant:  isPublicServant,
				EmployingBody:    employingBody,
				IsSanctioned:     isSanctioned,
				GovSupplierCount: govSupplierCount,
			},
			Qualification: qualification,
			EntryDate:     &entry,
			ExitDate:      exit,
			CapitalShare:  share,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("PartnersOf: rows", err)
	}
	if out == nil {
		out = []ports.PartnerLink{}
	}
	return out, nil
}
