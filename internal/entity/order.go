package entity

import (
	"fmt"
	"time"

	gerr "github.com/evandalmeida/eDashboard/internal/errors"
	"github.com/shopspring/decimal"
)

// Order is a storefront order as returned by the order listing.
type Order struct {
	ID                  int64
	CreatedAt           time.Time
	TotalPrice          Amount
	SubtotalPrice       Amount
	TotalLineItemsPrice Amount
}

// RevenueBasis selects which order amount counts as sales.
type RevenueBasis string

const (
	// BasisTotalPrice includes tax and shipping.
	BasisTotalPrice RevenueBasis = "total_price"
	// BasisSubtotalPrice excludes tax and shipping.
	BasisSubtotalPrice RevenueBasis = "subtotal_price"
	// BasisLineItems sums line items before discounts, tax and shipping.
	BasisLineItems RevenueBasis = "line_items"
)

// basisFields maps each basis to the order field it reads.
var basisFields = map[RevenueBasis]func(Order) Amount{
	BasisTotalPrice:    func(o Order) Amount { return o.TotalPrice },
	BasisSubtotalPrice: func(o Order) Amount { return o.SubtotalPrice },
	BasisLineItems:     func(o Order) Amount { return o.TotalLineItemsPrice },
}

// ParseRevenueBasis returns BasisTotalPrice for an empty string.
func ParseRevenueBasis(s string) (RevenueBasis, error) {
	if s == "" {
		return BasisTotalPrice, nil
	}
	b := RevenueBasis(s)
	if _, ok := basisFields[b]; !ok {
		return "", fmt.Errorf("%w: %q", gerr.ErrInvalidBasis, s)
	}
	return b, nil
}

// Amount returns the order amount under the basis. Absent fields count as zero,
// and an unknown basis falls back to total price.
func (b RevenueBasis) Amount(o Order) decimal.Decimal {
	field, ok := basisFields[b]
	if !ok {
		field = basisFields[BasisTotalPrice]
	}
	return field(o).OrZero()
}

// Sum adds the basis amount of every order.
func (b RevenueBasis) Sum(orders []Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(b.Amount(o))
	}
	return total
}
