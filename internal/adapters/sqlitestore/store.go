// Package sqlitestore is the analytical-store adapter: it satisfies every
// capability interface in internal/ports against an embedded, read-only
// SQLite file built by the offline ingestion pipeline. Every query is a
// parameterized prepared statement; nothing ever composes an identifier
// literal into query text.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"supplierwatch/internal/apperr"
)

// Store holds the single shared, read-only database handle. It is opened
// once during process initialization (§5) and is safe for concurrent use by
// every worker goroutine; database/sql pools connections internally.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens path read-only. The file must already exist: this adapter never
// creates or migrates schema in production. A missing or unreadable file
// fails fast with a wrapped error the caller should treat as fatal at boot.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dsn := fmt.Sprintf("file:%s?mode=ro&immutable=1", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open analytical store: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping analytical store %s: %w", path, err)
	}
	db.SetMaxOpenConns(16)
	logger.InfoContext(ctx, "analytical store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database handle. Called once, at shutdown.
func (s *Store) Close() error { return s.db.Close() }

// storeErr wraps a raw database/sql error into the §7 StoreError class. op
// names the failing operation for logs only; it never reaches a response.
func storeErr(op string, cause error) error {
	return apperr.StoreError(fmt.Sprintf("analytical store failure during %s", op), cause)
}
