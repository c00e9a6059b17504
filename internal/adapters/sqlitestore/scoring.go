package sqlitestore

import (
	"time"

	"supplierwatch/internal/domain"
	"supplierwatch/internal/domain/ruleengine"
)

// computeScoreForSummary derives a ranking-row score on demand from the raw
// rows this adapter already fetched, rather than persisting a separate
// materialized score column. The rule engine is pure; "today" is pinned at
// read time, matching §4.5's per-request evaluation model.
func computeScoreForSummary(supplier domain.Supplier, partners []domain.Partner, contracts []domain.Contract, sanctions []domain.Sanction) domain.ScoreBreakdown {
	return ruleengine.ComputeCumulativeScore(supplier, ruleengine.ScoreContext{
		Partners:  partners,
		Contracts: contracts,
		Sanctions: sanctions,
		Reference: time.Now().UTC(),
	})
}
