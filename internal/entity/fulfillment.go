package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FulfillmentOrder is a dropshipping order with its provider-reported amounts.
// A zero CreateDate means the provider sent no usable creation time.
type FulfillmentOrder struct {
	OrderID       string
	CreateDate    time.Time
	OrderAmount   Amount
	ProductAmount Amount
	PostageAmount Amount
}

// CostRule yields a fulfillment cost when it applies to the order.
type CostRule struct {
	Name  string
	Apply func(FulfillmentOrder) (decimal.Decimal, bool)
}

// CostRules are tried in order; the first that applies decides the cost.
var CostRules = []CostRule{
	{
		Name: "order_amount",
		Apply: func(o FulfillmentOrder) (decimal.Decimal, bool) {
			return o.OrderAmount.Value, o.OrderAmount.Valid
		},
	},
	{
		Name: "product_plus_postage",
		Apply: func(o FulfillmentOrder) (decimal.Decimal, bool) {
			return o.ProductAmount.OrZero().Add(o.PostageAmount.OrZero()), true
		},
	},
}

// Cost returns the order amount if present, else product + postage.
func (o FulfillmentOrder) Cost() decimal.Decimal {
	for _, r := range CostRules {
		if v, ok := r.Apply(o); ok {
			return v
		}
	}
	return decimal.Zero
}

// AdSpendDay is one pre-aggregated day of ad account spend.
type AdSpendDay struct {
	Date  time.Time
	Spend decimal.Decimal
}
