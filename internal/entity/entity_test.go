package entity

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	gerr "github.com/evandalmeida/eDashboard/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmountUnmarshal(t *testing.T) {
	var v struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
		E Amount `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a":"12.50","b":3,"c":null,"d":"","e":"n/a"}`), &v)
	require.NoError(t, err)

	assert.True(t, v.A.Valid)
	assert.True(t, v.A.Value.Equal(d("12.50")))
	assert.True(t, v.B.Valid)
	assert.True(t, v.B.Value.Equal(d("3")))
	assert.False(t, v.C.Valid)
	assert.False(t, v.D.Valid)
	assert.False(t, v.E.Valid)
}

func TestFulfillmentCostFallback(t *testing.T) {
	tests := []struct {
		name  string
		order FulfillmentOrder
		want  string
	}{
		{"product and postage", FulfillmentOrder{ProductAmount: NewAmount(d("12.50")), PostageAmount: NewAmount(d("3.00"))}, "15.50"},
		{"order amount only", FulfillmentOrder{OrderAmount: NewAmount(d("20.00"))}, "20.00"},
		{"order amount wins", FulfillmentOrder{OrderAmount: NewAmount(d("20.00")), ProductAmount: NewAmount(d("12.50")), PostageAmount: NewAmount(d("3.00"))}, "20.00"},
		{"zero order amount still wins", FulfillmentOrder{OrderAmount: NewAmount(decimal.Zero), ProductAmount: NewAmount(d("5"))}, "0"},
		{"product only", FulfillmentOrder{ProductAmount: NewAmount(d("7.25"))}, "7.25"},
		{"postage only", FulfillmentOrder{PostageAmount: NewAmount(d("4"))}, "4"},
		{"nothing", FulfillmentOrder{}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.order.Cost()
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseRevenueBasis(t *testing.T) {
	b, err := ParseRevenueBasis("")
	require.NoError(t, err)
	assert.Equal(t, BasisTotalPrice, b)

	for _, s := range []string{"total_price", "subtotal_price", "line_items"} {
		b, err := ParseRevenueBasis(s)
		require.NoError(t, err)
		assert.Equal(t, RevenueBasis(s), b)
	}

	_, err = ParseRevenueBasis("gross")
	assert.True(t, errors.Is(err, gerr.ErrInvalidBasis))
}

func TestRevenueBasisSwitch(t *testing.T) {
	noTax := []Order{
		{TotalPrice: NewAmount(d("100")), SubtotalPrice: NewAmount(d("100")), TotalLineItemsPrice: NewAmount(d("100"))},
		{TotalPrice: NewAmount(d("40")), SubtotalPrice: NewAmount(d("40")), TotalLineItemsPrice: NewAmount(d("40"))},
	}
	assert.True(t, BasisLineItems.Sum(noTax).Equal(BasisTotalPrice.Sum(noTax)))

	withShipping := append([]Order{}, noTax...)
	withShipping = append(withShipping, Order{
		TotalPrice: NewAmount(d("58.25")), SubtotalPrice: NewAmount(d("50")), TotalLineItemsPrice: NewAmount(d("50")),
	})
	assert.False(t, BasisLineItems.Sum(withShipping).Equal(BasisTotalPrice.Sum(withShipping)))
	assert.True(t, BasisTotalPrice.Sum(withShipping).Equal(d("198.25")))
}

func TestRevenueBasisAbsentFieldIsZero(t *testing.T) {
	orders := []Order{{TotalPrice: NewAmount(d("10"))}, {TotalPrice: NewAmount(d("5"))}}
	assert.True(t, BasisSubtotalPrice.Sum(orders).IsZero())
	assert.True(t, BasisTotalPrice.Sum(orders).Equal(d("15")))
}

func TestDateRange(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)

	r, err := ParseDateRange("2024-02-27", "2024-03-02", loc)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Len())

	days := r.Days()
	assert.Equal(t, "2024-02-27", DateKey(days[0]))
	assert.Equal(t, "2024-02-29", DateKey(days[2]))
	assert.Equal(t, "2024-03-02", DateKey(days[4]))

	from, to := r.Bounds()
	assert.Equal(t, "2024-02-27T00:00:00-05:00", from.Format(time.RFC3339))
	assert.Equal(t, "2024-03-02T23:59:59-05:00", to.Format(time.RFC3339))

	assert.True(t, r.Contains(time.Date(2024, 3, 3, 4, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 3, 3, 5, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 2, 27, 4, 59, 59, 0, time.UTC)))

	single, err := ParseDateRange("2024-01-01", "2024-01-01", loc)
	require.NoError(t, err)
	assert.Equal(t, 1, single.Len())

	_, err = ParseDateRange("2024-01-02", "2024-01-01", loc)
	assert.True(t, errors.Is(err, gerr.ErrInvalidRange))
	_, err = ParseDateRange("yesterday", "2024-01-01", loc)
	assert.True(t, errors.Is(err, gerr.ErrInvalidRange))
}

func TestLastDays(t *testing.T) {
	now := time.Date(2024, 5, 31, 2, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC-5", -5*3600)
	r := LastDays(now, 30, loc)
	assert.Equal(t, "2024-05-30", DateKey(r.End))
	assert.Equal(t, "2024-04-30", DateKey(r.Start))
	assert.Equal(t, 31, r.Len())
}

func TestDateRangeIn(t *testing.T) {
	utc, err := ParseDateRange("2024-03-01", "2024-03-03", time.UTC)
	require.NoError(t, err)
	loc := time.FixedZone("UTC-5", -5*3600)

	r := utc.In(loc)
	assert.Equal(t, "2024-03-01..2024-03-03", r.String())
	assert.Equal(t, loc, r.Location())
	assert.Equal(t, time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC), r.Start.UTC())
	assert.Equal(t, r, r.In(loc))
}
