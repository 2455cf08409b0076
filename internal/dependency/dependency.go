package dependency

import (
	"context"
	"time"

	"github.com/evandalmeida/eDashboard/internal/cj"
	"github.com/evandalmeida/eDashboard/internal/entity"
	"github.com/shopspring/decimal"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Orders interface {
		// FetchOrders returns the orders created within the range and their total under basis.
		FetchOrders(ctx context.Context, r entity.DateRange, basis entity.RevenueBasis) (decimal.Decimal, []entity.Order, error)
	}

	AdSpend interface {
		// FetchSpend returns the daily ad spend within the range and its total.
		FetchSpend(ctx context.Context, r entity.DateRange) (decimal.Decimal, []entity.AdSpendDay, error)
	}

	FulfillmentCosts interface {
		// FetchCosts returns the fulfillment cost of the orders created within the range.
		FetchCosts(ctx context.Context, r entity.DateRange) (*cj.CostReport, error)
	}

	Dashboard interface {
		Build(ctx context.Context, r entity.DateRange, basis entity.RevenueBasis) (*entity.Dashboard, error)
		DefaultRange() entity.DateRange
		Location() *time.Location
	}
)
