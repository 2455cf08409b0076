package dto

import (
	"github.com/evandalmeida/eDashboard/internal/currency"
	"github.com/evandalmeida/eDashboard/internal/entity"
	"github.com/shopspring/decimal"
)

type Dashboard struct {
	RunID   string                  `json:"run_id"`
	Start   string                  `json:"start"`
	End     string                  `json:"end"`
	Basis   string                  `json:"basis"`
	KPIs    KPIs                    `json:"kpis"`
	Metrics Metrics                 `json:"metrics"`
	Charts  Charts                  `json:"charts"`
	Ledger  []LedgerRow             `json:"ledger"`
	Notices []Notice                `json:"notices"`
	Sources map[string]SourceStatus `json:"sources"`
}

// KPIs are the metrics rendered for display.
type KPIs struct {
	SalesTotal   string `json:"sales_total"`
	AdSpendTotal string `json:"ad_spend_total"`
	CogsTotal    string `json:"cogs_total"`
	Profit       string `json:"profit"`
	ROI          string `json:"roi"`
	ROAS         string `json:"roas"`
}

type Metrics struct {
	SalesTotal   decimal.Decimal  `json:"sales_total"`
	AdSpendTotal decimal.Decimal  `json:"ad_spend_total"`
	CogsTotal    decimal.Decimal  `json:"cogs_total"`
	Profit       decimal.Decimal  `json:"profit"`
	ROI          *decimal.Decimal `json:"roi"`
	ROAS         *decimal.Decimal `json:"roas"`
}

type Charts struct {
	Daily     DailySeries  `json:"daily"`
	AvgByDow  LabelSeries  `json:"avg_by_dow"`
	AvgByHour HourlySeries `json:"avg_by_hour"`
}

type DailySeries struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
	Counts []int     `json:"counts"`
}

type LabelSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type HourlySeries struct {
	Hours  []int     `json:"hours"`
	Values []float64 `json:"values"`
}

type LedgerRow struct {
	Date         string          `json:"date"`
	ShopifySales decimal.Decimal `json:"shopify_sales"`
	FBSpend      decimal.Decimal `json:"fb_spend"`
	CJCost       decimal.Decimal `json:"cj_cost"`
	Net          decimal.Decimal `json:"net"`
}

type Notice struct {
	Level   string `json:"level"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

type SourceStatus struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func ConvertEntityDashboard(d *entity.Dashboard) *Dashboard {
	if d == nil {
		return nil
	}
	out := &Dashboard{
		RunID:   d.RunID,
		Start:   entity.DateKey(d.Range.Start),
		End:     entity.DateKey(d.Range.End),
		Basis:   string(d.Basis),
		KPIs:    ConvertEntityMetricsToKPIs(d.Metrics),
		Metrics: convertMetrics(d.Metrics),
		Charts:  convertCharts(d.Charts),
		Ledger:  make([]LedgerRow, 0, len(d.Ledger)),
		Notices: make([]Notice, 0, len(d.Notices)),
		Sources: make(map[string]SourceStatus, len(d.Sources)),
	}
	for _, row := range d.Ledger {
		out.Ledger = append(out.Ledger, LedgerRow{
			Date:         entity.DateKey(row.Date),
			ShopifySales: currency.Round(row.ShopifySales),
			FBSpend:      currency.Round(row.FBSpend),
			CJCost:       currency.Round(row.CJCost),
			Net:          currency.Round(row.Net),
		})
	}
	for _, n := range d.Notices {
		out.Notices = append(out.Notices, Notice{
			Level:   string(n.Level),
			Source:  string(n.Source),
			Message: n.Message,
		})
	}
	for src, st := range d.Sources {
		out.Sources[string(src)] = SourceStatus{OK: st.OK, Error: st.Error}
	}
	return out
}

func ConvertEntityMetricsToKPIs(m entity.Metrics) KPIs {
	return KPIs{
		SalesTotal:   currency.Money(m.SalesTotal),
		AdSpendTotal: currency.Money(m.AdSpendTotal),
		CogsTotal:    currency.Money(m.CostTotal),
		Profit:       currency.Money(m.Profit),
		ROI:          currency.Percent(m.ROI),
		ROAS:         currency.Percent(m.ROAS),
	}
}

func convertMetrics(m entity.Metrics) Metrics {
	return Metrics{
		SalesTotal:   currency.Round(m.SalesTotal),
		AdSpendTotal: currency.Round(m.AdSpendTotal),
		CogsTotal:    currency.Round(m.CostTotal),
		Profit:       currency.Round(m.Profit),
		ROI:          roundRatio(m.ROI),
		ROAS:         roundRatio(m.ROAS),
	}
}

func roundRatio(r *decimal.Decimal) *decimal.Decimal {
	if r == nil {
		return nil
	}
	v := r.Round(4)
	return &v
}

func convertCharts(c entity.Charts) Charts {
	out := Charts{
		Daily: DailySeries{
			Dates:  make([]string, 0, len(c.Daily)),
			Values: make([]float64, 0, len(c.Daily)),
			Counts: make([]int, 0, len(c.Daily)),
		},
		AvgByDow: LabelSeries{
			Labels: make([]string, 0, len(c.Weekday)),
			Values: make([]float64, 0, len(c.Weekday)),
		},
		AvgByHour: HourlySeries{
			Hours:  make([]int, 0, len(c.Hourly)),
			Values: make([]float64, 0, len(c.Hourly)),
		},
	}
	for _, p := range c.Daily {
		out.Daily.Dates = append(out.Daily.Dates, entity.DateKey(p.Date))
		out.Daily.Values = append(out.Daily.Values, toFloat(p.Value))
		out.Daily.Counts = append(out.Daily.Counts, p.Count)
	}
	for _, w := range c.Weekday {
		out.AvgByDow.Labels = append(out.AvgByDow.Labels, w.Label)
		out.AvgByDow.Values = append(out.AvgByDow.Values, toFloat(w.Value))
	}
	for _, h := range c.Hourly {
		out.AvgByHour.Hours = append(out.AvgByHour.Hours, h.Hour)
		out.AvgByHour.Values = append(out.AvgByHour.Values, toFloat(h.Value))
	}
	return out
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := currency.Round(d).Float64()
	return f
}
