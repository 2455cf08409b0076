package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies an upstream data source.
type Source string

const (
	SourceShopify Source = "shopify"
	SourceMeta    Source = "meta"
	SourceCJ      Source = "cj"
)

// Metrics are the range totals and the ratios derived from them.
// A nil ratio is not applicable.
type Metrics struct {
	SalesTotal   decimal.Decimal
	AdSpendTotal decimal.Decimal
	CostTotal    decimal.Decimal
	Profit       decimal.Decimal
	ROI          *decimal.Decimal
	ROAS         *decimal.Decimal
}

type TimeSeriesPoint struct {
	Date  time.Time
	Value decimal.Decimal
	Count int
}

type WeekdayAverage struct {
	Weekday time.Weekday
	Label   string
	Value   decimal.Decimal
}

type HourAverage struct {
	Hour  int
	Value decimal.Decimal
}

// Charts is the behavioral view of the sales series.
type Charts struct {
	Daily   []TimeSeriesPoint
	Weekday []WeekdayAverage
	Hourly  []HourAverage
}

// LedgerRow is one reconciled day.
type LedgerRow struct {
	Date         time.Time
	ShopifySales decimal.Decimal
	FBSpend      decimal.Decimal
	CJCost       decimal.Decimal
	Net          decimal.Decimal
}

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeDanger  NoticeLevel = "danger"
)

// Notice is a user-visible annotation of a dashboard run.
type Notice struct {
	Level   NoticeLevel
	Source  Source
	Message string
}

// SourceStatus records how one source fared during a run.
type SourceStatus struct {
	OK    bool
	Error string
}

// Dashboard is the full result of one reconciliation run.
type Dashboard struct {
	RunID   string
	Range   DateRange
	Basis   RevenueBasis
	Metrics Metrics
	Charts  Charts
	Ledger  []LedgerRow
	Notices []Notice
	Sources map[Source]SourceStatus
}
