// Package dashboard fetches every source for a date range and reconciles them
// into one dashboard.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evandalmeida/eDashboard/internal/cj"
	"github.com/evandalmeida/eDashboard/internal/dependency"
	"github.com/evandalmeida/eDashboard/internal/entity"
	gerr "github.com/evandalmeida/eDashboard/internal/errors"
	"github.com/evandalmeida/eDashboard/internal/reconcile"
	"github.com/evandalmeida/eDashboard/internal/timeseries"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Timezone            string        `mapstructure:"timezone"`
	DefaultLookbackDays int           `mapstructure:"default_lookback_days"`
	SourceTimeout       time.Duration `mapstructure:"source_timeout"`
}

func DefaultConfig() Config {
	return Config{
		Timezone:            "America/New_York",
		DefaultLookbackDays: 30,
		SourceTimeout:       60 * time.Second,
	}
}

// Service builds dashboards. Sources fail independently: a failed source is
// reported as a notice and contributes nothing.
type Service struct {
	c      *Config
	loc    *time.Location
	orders dependency.Orders
	spend  dependency.AdSpend
	costs  dependency.FulfillmentCosts
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now when computing the default range.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(c *Config, orders dependency.Orders, spend dependency.AdSpend, costs dependency.FulfillmentCosts, opts ...Option) (*Service, error) {
	def := DefaultConfig()
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.DefaultLookbackDays <= 0 {
		c.DefaultLookbackDays = def.DefaultLookbackDays
	}
	if c.SourceTimeout <= 0 {
		c.SourceTimeout = def.SourceTimeout
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load dashboard timezone %q: %w", c.Timezone, err)
	}

	s := &Service{
		c:      c,
		loc:    loc,
		orders: orders,
		spend:  spend,
		costs:  costs,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Location is the zone calendar days are reckoned in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// DefaultRange ends today and starts DefaultLookbackDays earlier.
func (s *Service) DefaultRange() entity.DateRange {
	return entity.LastDays(s.now(), s.c.DefaultLookbackDays, s.loc)
}

type fetched struct {
	salesTotal decimal.Decimal
	orders     []entity.Order
	salesErr   error

	spendTotal decimal.Decimal
	spendDays  []entity.AdSpendDay
	spendErr   error

	costs   *cj.CostReport
	costErr error
}

func (s *Service) fetch(ctx context.Context, r entity.DateRange, basis entity.RevenueBasis) *fetched {
	f := &fetched{}

	// every fetch reports its own error so one failure never cancels the others
	var g errgroup.Group
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(ctx, s.c.SourceTimeout)
		defer cancel()
		f.salesTotal, f.orders, f.salesErr = s.orders.FetchOrders(ctx, r, basis)
		return nil
	})
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(ctx, s.c.SourceTimeout)
		defer cancel()
		f.spendTotal, f.spendDays, f.spendErr = s.spend.FetchSpend(ctx, r)
		return nil
	})
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(ctx, s.c.SourceTimeout)
		defer cancel()
		f.costs, f.costErr = s.costs.FetchCosts(ctx, r)
		return nil
	})
	_ = g.Wait()
	return f
}

// Build fetches the three sources concurrently and reconciles them over r.
// It fails only when ctx is done; source failures become notices.
func (s *Service) Build(ctx context.Context, r entity.DateRange, basis entity.RevenueBasis) (*entity.Dashboard, error) {
	runID := uuid.NewString()
	start := time.Now()
	r = r.In(s.loc)

	f := s.fetch(ctx, r, basis)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dashboard run %s: %w", runID, err)
	}

	d := &entity.Dashboard{
		RunID:   runID,
		Range:   r,
		Basis:   basis,
		Sources: make(map[entity.Source]entity.SourceStatus, 3),
	}

	salesTotal := decimal.Zero
	var orders []entity.Order
	if f.salesErr != nil {
		fail(ctx, d, entity.SourceShopify, entity.NoticeDanger, f.salesErr)
	} else {
		salesTotal, orders = f.salesTotal, f.orders
		d.Sources[entity.SourceShopify] = entity.SourceStatus{OK: true}
	}

	spendTotal := decimal.Zero
	var spend []entity.TimeSeriesPoint
	if f.spendErr != nil {
		fail(ctx, d, entity.SourceMeta, entity.NoticeDanger, f.spendErr)
	} else {
		spendTotal = f.spendTotal
		spend = timeseries.BucketDaily(timeseries.FromAdSpend(f.spendDays), r)
		d.Sources[entity.SourceMeta] = entity.SourceStatus{OK: true}
	}

	costTotal := decimal.Zero
	var cost []entity.TimeSeriesPoint
	if f.costErr != nil {
		fail(ctx, d, entity.SourceCJ, entity.NoticeWarning, fmt.Errorf("CJ error: %w", f.costErr))
	} else if f.costs != nil {
		costTotal = f.costs.Total
		cost = f.costs.Daily
		d.Sources[entity.SourceCJ] = entity.SourceStatus{OK: true}
		d.Notices = append(d.Notices, costNotices(f.costs)...)
	}

	d.Charts = timeseries.Aggregate(orders, basis, r)
	d.Ledger = reconcile.Merge(d.Charts.Daily, spend, cost)
	d.Metrics = reconcile.Compute(salesTotal, spendTotal, costTotal)

	slog.Default().InfoContext(ctx, "dashboard built",
		slog.String("run_id", runID),
		slog.String("range", r.String()),
		slog.String("basis", string(basis)),
		slog.Int("notices", len(d.Notices)),
		slog.Duration("took", time.Since(start)),
	)
	return d, nil
}

func costNotices(rep *cj.CostReport) []entity.Notice {
	var ns []entity.Notice
	if w, ok := rep.StaleWarning(); ok {
		ns = append(ns, entity.Notice{Level: entity.NoticeInfo, Source: entity.SourceCJ, Message: w.String()})
	}
	if w, ok := rep.TruncationWarning(); ok {
		ns = append(ns, entity.Notice{Level: entity.NoticeWarning, Source: entity.SourceCJ, Message: w.String()})
	}
	return ns
}

// fail marks src failed on d and attaches a notice for err.
func fail(ctx context.Context, d *entity.Dashboard, src entity.Source, level entity.NoticeLevel, err error) {
	d.Sources[src] = entity.SourceStatus{Error: err.Error()}
	d.Notices = append(d.Notices, entity.Notice{
		Level:   level,
		Source:  src,
		Message: err.Error(),
	})
	attrs := []any{
		slog.String("run_id", d.RunID),
		slog.String("source", string(src)),
		slog.String("err", err.Error()),
	}
	// a source without credentials is unconfigured, not failing
	if gerr.IsCredential(err) {
		slog.Default().WarnContext(ctx, "source not configured", attrs...)
		return
	}
	slog.Default().ErrorContext(ctx, "source fetch failed", attrs...)
}
