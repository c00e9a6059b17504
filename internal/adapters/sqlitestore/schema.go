package sqlitestore

// TestSchema is the DDL used to build an in-memory fixture database for
// repository tests (§A.4). It mirrors the dimensional layout §6 describes —
// supplier/partner/org/contract/donation/sanction/alert — flattened into
// plain relational tables. Production never runs this DDL: the ingestion
// pipeline builds the real file out of scope of this core.
const TestSchema = `
CREATE TABLE suppliers (
	id                   TEXT PRIMARY KEY,
	legal_name           TEXT NOT NULL,
	opening_date         TEXT,
	capital              TEXT,
	primary_activity     TEXT NOT NULL DEFAULT '',
	activity_description TEXT NOT NULL DEFAULT '',
	street               TEXT NOT NULL DEFAULT '',
	number               TEXT NOT NULL DEFAULT '',
	municipality         TEXT NOT NULL DEFAULT '',
	state                TEXT NOT NULL DEFAULT '',
	postal_code          TEXT NOT NULL DEFAULT '',
	cadastral_status     TEXT NOT NULL DEFAULT 'ACTIVE',
	employee_count       INTEGER,
	shared_address_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE contracts (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	supplier_id   TEXT NOT NULL,
	org_code      TEXT NOT NULL,
	value         TEXT NOT NULL,
	subject       TEXT NOT NULL DEFAULT '',
	tender_number TEXT NOT NULL DEFAULT '',
	signed_date   TEXT,
	valid_until   TEXT
);
CREATE INDEX idx_contracts_supplier ON contracts(supplier_id);
CREATE INDEX idx_contracts_org ON contracts(org_code);

CREATE TABLE sanctions (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	supplier_id      TEXT NOT NULL,
	kind             TEXT NOT NULL,
	sanctioning_body TEXT NOT NULL DEFAULT '',
	reason           TEXT NOT NULL DEFAULT '',
	start_date       TEXT NOT NULL,
	end_date         TEXT
);
CREATE INDEX idx_sanctions_supplier ON sanctions(supplier_id);

CREATE TABLE partners (
	person_hash        TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	is_public_servant  INTEGER NOT NULL DEFAULT 0,
	employing_body     TEXT NOT NULL DEFAULT '',
	is_sanctioned      INTEGER NOT NULL DEFAULT 0,
	gov_supplier_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE ownership_links (
	supplier_id   TEXT NOT NULL,
	person_hash   TEXT NOT NULL,
	qualification TEXT NOT NULL DEFAULT '',
	entry_date    TEXT NOT NULL,
	exit_date     TEXT,
	capital_share TEXT NOT NULL DEFAULT '0'
);
CREATE INDEX idx_ownership_supplier ON ownership_links(supplier_id);
CREATE INDEX idx_ownership_partner ON ownership_links(person_hash);

CREATE TABLE donations (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	supplier_id      TEXT,
	person_hash      TEXT,
	candidate_name   TEXT NOT NULL DEFAULT '',
	candidate_party  TEXT NOT NULL DEFAULT '',
	candidate_office TEXT NOT NULL DEFAULT '',
	org_code_aligned TEXT NOT NULL DEFAULT '',
	amount           TEXT NOT NULL,
	election_year    INTEGER NOT NULL DEFAULT 0,
	resource         TEXT NOT NULL DEFAULT 'OWN'
);
CREATE INDEX idx_donations_supplier ON donations(supplier_id);
CREATE INDEX idx_donations_partner ON donations(person_hash);

CREATE TABLE alerts (
	id           TEXT PRIMARY KEY,
	supplier_id  TEXT NOT NULL,
	kind         TEXT NOT NULL,
	severity     TEXT NOT NULL,
	description  TEXT NOT NULL,
	evidence     TEXT NOT NULL,
	partner_hash TEXT,
	detected_at  TEXT NOT NULL
);
CREATE INDEX idx_alerts_supplier ON alerts(supplier_id);
CREATE INDEX idx_alerts_kind ON alerts(kind);
CREATE INDEX idx_alerts_detected ON alerts(detected_at);

CREATE TABLE source_freshness (
	source_name TEXT PRIMARY KEY,
	last_update TEXT,
	row_count   INTEGER NOT NULL DEFAULT 0
);
`
