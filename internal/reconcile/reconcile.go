// Package reconcile joins the per-source daily series into a ledger and
// derives the profitability metrics.
package reconcile

import (
	"github.com/evandalmeida/eDashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// Merge builds one ledger row per sales day. Spend and cost are joined by
// calendar day; days they lack count as zero. Inputs are not modified.
func Merge(sales, spend, cost []entity.TimeSeriesPoint) []entity.LedgerRow {
	spendByDay := index(spend)
	costByDay := index(cost)

	rows := make([]entity.LedgerRow, 0, len(sales))
	for _, s := range sales {
		key := entity.DateKey(s.Date)
		sp := spendByDay[key]
		c := costByDay[key]
		rows = append(rows, entity.LedgerRow{
			Date:         s.Date,
			ShopifySales: s.Value,
			FBSpend:      sp,
			CJCost:       c,
			Net:          s.Value.Sub(sp.Add(c)),
		})
	}
	return rows
}

func index(points []entity.TimeSeriesPoint) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		key := entity.DateKey(p.Date)
		m[key] = m[key].Add(p.Value)
	}
	return m
}

// Compute derives profit and the return ratios. ROAS is undefined without
// spend and ROI is undefined without spend or cost.
func Compute(sales, spend, cost decimal.Decimal) entity.Metrics {
	outlay := spend.Add(cost)
	profit := sales.Sub(outlay)

	m := entity.Metrics{
		SalesTotal:   sales,
		AdSpendTotal: spend,
		CostTotal:    cost,
		Profit:       profit,
	}
	if spend.IsPositive() {
		m.ROAS = ptr(sales.Div(spend))
	}
	if outlay.IsPositive() {
		m.ROI = ptr(profit.Div(outlay))
	}
	return m
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
