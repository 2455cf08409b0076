package entity

import (
	"github.com/shopspring/decimal"
)

// Amount is an optional monetary value reported by an upstream API.
// Null, empty or unparseable source values decode as absent.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount returns a present amount.
func NewAmount(v decimal.Decimal) Amount {
	return Amount{Value: v, Valid: true}
}

// AmountFromString parses s, returning an absent amount on failure.
func AmountFromString(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

// OrZero returns the value, or zero when absent.
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var nd decimal.NullDecimal
	if err := nd.UnmarshalJSON(b); err != nil {
		*a = Amount{}
		return nil
	}
	*a = Amount{Value: nd.Decimal, Valid: nd.Valid}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return a.Value.MarshalJSON()
}
