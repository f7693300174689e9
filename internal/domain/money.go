// internal/domain/money.go
package domain

import "github.com/shopspring/decimal"

// Money is an exact decimal whose JSON form keeps the stored scale: a value
// recorded as 10.00 renders as "10.00", never "10". decimal.Decimal trims
// trailing zeros when marshaling; the exponent survives the NUMERIC scan, so
// it is re-applied here. Scanning, arithmetic and comparison are the embedded
// decimal's.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal without changing its scale.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MarshalJSON renders the value as a quoted string at its full scale.
func (m Money) MarshalJSON() ([]byte, error) {
	s := m.String()
	if exp := m.Exponent(); exp < 0 {
		s = m.StringFixed(-exp)
	}
	return []byte(`"` + s + `"`), nil
}
