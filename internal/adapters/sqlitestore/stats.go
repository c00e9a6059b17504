package sqlitestore

import (
	"context"
	"database/sql"

	"supplierwatch/internal/ports"
)

// StatsRollup satisfies ports.StatsReader: headline counts plus per-source
// freshness metadata (§4.4).
func (s *Store) StatsRollup(ctx context.Context) (ports.Stats, error) {
	var stats ports.Stats

	supplierCount, err := s.CountSuppliers(ctx)
	if err != nil {
		return ports.Stats{}, err
	}
	stats.TotalSuppliers = supplierCount

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contracts`).Scan(&stats.TotalContracts); err != nil {
		return ports.Stats{}, storeErr("StatsRollup: contracts", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts`).Scan(&stats.TotalAlerts); err != nil {
		return ports.Stats{}, storeErr("StatsRollup: alerts", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT source_name, last_update, row_count FROM source_freshness ORDER BY source_name`)
	if err != nil {
		return ports.Stats{}, storeErr("StatsRollup: sources", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var lastUpdateRaw sql.NullString
		var rowCount int
		if err := rows.Scan(&name, &lastUpdateRaw, &rowCount); err != nil {
			return ports.Stats{}, storeErr("StatsRollup: sources scan", err)
		}
		lastUpdate, err := nullableDate(lastUpdateRaw)
		if err != nil {
			return ports.Stats{}, storeErr("StatsRollup: last_update", err)
		}
		stats.Sources = append(stats.Sources, ports.SourceFreshness{
			SourceName: name,
			LastUpdate: lastUpdate,
			RowCount:   rowCount,
		})
	}
	if err := rows.Err(); err != nil {
		return ports.Stats{}, storeErr("StatsRollup: sources rows", err)
	}
	return stats, nil
}
