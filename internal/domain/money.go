package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned when a Money or Share construction would
// otherwise hold a negative value.
var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is a non-negative fixed-point decimal with exactly two fractional
// digits. It is never represented as a binary float, per the data model's
// prohibition on floating point for monetary quantities.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the additive identity.
var ZeroMoney = Money{amount: decimal.Zero}

// NewMoney constructs a Money from a decimal.Decimal, rounding to two
// fractional digits and rejecting negative values.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeAmount, d.String())
	}
	return Money{amount: d.Round(2)}, nil
}

// MoneyFromString parses a decimal string (e.g. "1234.56") into Money.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money literal %q: %w", s, err)
	}
	return NewMoney(d)
}

// MoneyFromCents builds Money from an integer count of cents, useful for
// table-driven tests.
func MoneyFromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -2)}
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) String() string { return m.amount.StringFixed(2) }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(2)}
}

func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	return NewMoney(result)
}

func (m Money) GreaterThan(other Money) bool { return m.amount.GreaterThan(other.amount) }
func (m Money) LessThan(other Money) bool    { return m.amount.LessThan(other.amount) }
func (m Money) IsZero() bool                 { return m.amount.IsZero() }

// Cmp returns -1, 0, or 1 per decimal.Decimal.Cmp.
func (m Money) Cmp(other Money) int { return m.amount.Cmp(other.amount) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.amount.StringFixed(2))), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) >= 2 && data[0] == '"' {
		s = string(data[1 : len(data)-1])
	} else {
		s = string(data)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid money literal %q: %w", s, err)
	}
	mv, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = mv
	return nil
}

// Share is a percentage in the closed interval [0, 100].
type Share struct {
	pct decimal.Decimal
}

// NewShare validates that d lies within [0, 100].
func NewShare(d decimal.Decimal) (Share, error) {
	if d.IsNegative() {
		return Share{}, fmt.Errorf("%w: %s", ErrNegativeAmount, d.String())
	}
	if d.GreaterThan(decimal.NewFromInt(100)) {
		return Share{}, fmt.Errorf("share %s exceeds 100", d.String())
	}
	return Share{pct: d}, nil
}

func ShareFromFloat(f float64) (Share, error) {
	return NewShare(decimal.NewFromFloat(f))
}

func (s Share) Decimal() decimal.Decimal { return s.pct }
func (s Share) String() string           { return s.pct.String() }
