package sqlitestore

import (
	"context"
	"database/sql"

	"supplierwatch/internal/domain"
)

// DonationsFor satisfies ports.DonationReader. A donation is linked to a
// supplier either directly or through a partner holding an ownership link in
// that supplier (§3: "at least one of supplier/partner links present").
func (s *Store) DonationsFor(ctx context.Context, id domain.CompanyID) ([]domain.Donation, error) {
	const q = `
		SELECT supplier_id, person_hash, candidate_name, candidate_party, candidate_office,
		       org_code_aligned, amount, election_year, resource
		FROM donations
		WHERE supplier_id = ?
		   OR person_hash IN (SELECT person_hash FROM ownership_links WHERE supplier_id = ?)`

	rows, err := s.db.QueryContext(ctx, q, id.String(), id.String())
	if err != nil {
		return nil, storeErr("DonationsFor", err)
	}
	defer rows.Close()

	var out []domain.Donation
	for rows.Next() {
		var supplierID, personHash sql.NullString
		var candidateName, candidateParty, candidateOffice, orgCodeAligned, amount, resource string
		var electionYear int
		if err := rows.Scan(&supplierID, &personHash, &candidateName, &candidateParty, &candidateOffice,
			&orgCodeAligned, &amount, &electionYear, &resource); err != nil {
			return nil, storeErr("DonationsFor: scan", err)
		}

		var supplierRef *domain.CompanyID
		if supplierID.Valid && supplierID.String != "" {
			cid, err := domain.NewCompanyID(supplierID.String)
			if err != nil {
				return nil, storeErr("DonationsFor: supplier id", err)
			}
			supplierRef = &cid
		}
		var partnerRef *domain.PersonHash
		if personHash.Valid && personHash.String != "" {
			ph := domain.PersonHash(personHash.String)
			partnerRef = &ph
		}

		money, err := domain.MoneyFromString(amount)
		if err != nil {
			return nil, storeErr("DonationsFor: amount", err)
		}

		out = append(out, domain.Donation{
			SupplierRef:     supplierRef,
			PartnerRef:      partnerRef,
			CandidateName:   candidateName,
			CandidateParty:  candidateParty,
			CandidateOffice: candidateOffice,
			OrgCodeAligned:  domain.GovOrgCode(orgCodeAligned),
			Amount:          money,
			ElectionYear:    electionYear,
			Resource:        domain.ResourceType(resource),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("DonationsFor: rows", err)
	}
	if out == nil {
		out = []domain.Donation{}
	}
	return out, nil
}
