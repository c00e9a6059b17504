package sqlitestore

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// OpenTestStore builds an in-memory SQLite database from TestSchema and
// returns a Store over it. Used by repository, service, and HTTP layer
// tests (§A.4); production never calls this — it always opens an existing
// pre-built file read-only via Open.
func OpenTestStore(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, TestSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, logger: slog.Default()}, nil
}

// Fixture is a minimal, composable set of rows a test can insert into a test
// store without hand-writing SQL in every test.
type Fixture struct {
	SupplierID         string
	LegalName          string
	OpeningDate        *time.Time
	Capital            string
	PrimaryActivity    string
	ActivityDescription string
	Street, Number      string
	Municipality, State string
	PostalCode          string
	CadastralStatus     string
	EmployeeCount       *int
	SharedAddressCount  int
}

// InsertSupplier inserts one supplier row built from f.
func (s *Store) InsertSupplier(ctx context.Context, f Fixture) error {
	var opening any
	if f.OpeningDate != nil {
		opening = formatDate(*f.OpeningDate)
	}
	var capital any
	if f.Capital != "" {
		capital = f.Capital
	}
	var employeeCount any
	if f.EmployeeCount != nil {
		employeeCount = *f.EmployeeCount
	}
	const q = `
		INSERT INTO suppliers (id, legal_name, opening_date, capital, primary_activity, activity_description,
		                        street, number, municipality, state, postal_code, cadastral_status,
		                        employee_count, shared_address_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		f.SupplierID, f.LegalName, opening, capital, f.PrimaryActivity, f.ActivityDescription,
		f.Street, f.Number, f.Municipality, f.State, f.PostalCode, f.CadastralStatus,
		employeeCount, f.SharedAddressCount)
	return err
}

// InsertContract inserts one contract row.
func (s *Store) InsertContract(ctx context.Context, supplierID, orgCode, value, subject, tenderNumber string, signedDate, validUntil *time.Time) error {
	var signed, valid any
	if signedDate != nil {
		signed = formatDate(*signedDate)
	}
	if validUntil != nil {
		valid = formatDate(*validUntil)
	}
	const q = `INSERT INTO contracts (supplier_id, org_code, value, subject, tender_number, signed_date, valid_until) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, supplierID, orgCode, value, subject, tenderNumber, signed, valid)
	return err
}

// InsertSanction inserts one sanction row.
func (s *Store) InsertSanction(ctx context.Context, supplierID, kind, body, reason string, start time.Time, end *time.Time) error {
	var endVal any
	if end != nil {
		endVal = formatDate(*end)
	}
	const q = `INSERT INTO sanctions (supplier_id, kind, sanctioning_body, reason, start_date, end_date) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, supplierID, kind, body, reason, formatDate(start), endVal)
	return err
}

// InsertPartner inserts a partner and its ownership link to a supplier.
func (s *Store) InsertPartner(ctx context.Context, personHash, name string, isPublicServant bool, employingBody string, isSanctioned bool, govSupplierCount int, supplierID, qualification string, entryDate time.Time, exitDate *time.Time, capitalShare string) error {
	const qPartner = `
		INSERT INTO partners (person_hash, name, is_public_servant, employing_body, is_sanctioned, gov_supplier_count)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(person_hash) DO UPDATE SET name=excluded.name`
	if _, err := s.db.ExecContext(ctx, qPartner, personHash, name, isPublicServant, employingBody, isSanctioned, govSupplierCount); err != nil {
		return err
	}
	var exitVal any
	if exitDate != nil {
		exitVal = formatDate(*exitDate)
	}
	const qLink = `INSERT INTO ownership_links (supplier_id, person_hash, qualification, entry_date, exit_date, capital_share) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, qLink, supplierID, personHash, qualification, formatDate(entryDate), exitVal, capitalShare)
	return err
}

// InsertDonation inserts one donation row.
func (s *Store) InsertDonation(ctx context.Context, supplierID, personHash *string, candidateName, candidateParty, candidateOffice, orgCodeAligned, amount string, electionYear int, resource string) error {
	const q = `
		INSERT INTO donations (supplier_id, person_hash, candidate_name, candidate_party, candidate_office, org_code_aligned, amount, election_year, resource)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, supplierID, personHash, candidateName, candidateParty, candidateOffice, orgCodeAligned, amount, electionYear, resource)
	return err
}

// InsertAlert inserts one pre-computed alert row, used by feed tests.
func (s *Store) InsertAlert(ctx context.Context, id, supplierID, kind, severity, description, evidence string, partnerHash *string, detectedAt time.Time) error {
	const q = `INSERT INTO alerts (id, supplier_id, kind, severity, description, evidence, partner_hash, detected_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, id, supplierID, kind, severity, description, evidence, partnerHash, detectedAt.Format(time.RFC3339))
	return err
}

// InsertSourceFreshness inserts one source_freshness row.
func (s *Store) InsertSourceFreshness(ctx context.Context, sourceName string, lastUpdate *time.Time, rowCount int) error {
	var v any
	if lastUpdate != nil {
		v = formatDate(*lastUpdate)
	}
	const q = `INSERT INTO source_freshness (source_name, last_update, row_count) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, sourceName, v, rowCount)
	return err
}
