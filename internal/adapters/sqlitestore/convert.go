package sqlitestore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"supplierwatch/internal/domain"
)

func decimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func nullableDate(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := parseDate(ns.String)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", ns.String, err)
	}
	return &t, nil
}

func nullableMoney(ns sql.NullString) (*domain.Money, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	m, err := domain.MoneyFromString(ns.String)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func nullableInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
