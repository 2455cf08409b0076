// Package timeseries normalizes timestamped amounts onto the local calendar days
// of a date range and derives the behavioral averages of the sales series.
package timeseries

import (
	"time"

	"github.com/evandalmeida/eDashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// weekdays in chart order.
var weekdays = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// BucketDaily sums points by their calendar day in the range's location and
// reindexes them over every day of the range. Days without points are zero;
// points outside the range are dropped.
func BucketDaily(points []entity.TimeSeriesPoint, r entity.DateRange) []entity.TimeSeriesPoint {
	loc := r.Location()
	pointMap := make(map[string]entity.TimeSeriesPoint, len(points))
	for _, p := range points {
		key := entity.DateKey(p.Date.In(loc))
		acc := pointMap[key]
		acc.Value = acc.Value.Add(p.Value)
		acc.Count += p.Count
		pointMap[key] = acc
	}

	days := r.Days()
	result := make([]entity.TimeSeriesPoint, 0, len(days))
	for _, d := range days {
		p, ok := pointMap[entity.DateKey(d)]
		if !ok {
			result = append(result, entity.TimeSeriesPoint{Date: d, Value: decimal.Zero})
			continue
		}
		result = append(result, entity.TimeSeriesPoint{Date: d, Value: p.Value, Count: p.Count})
	}
	return result
}

// Daily is the range-complete sales series: each day carries the basis amount
// and the number of orders created on it.
func Daily(orders []entity.Order, basis entity.RevenueBasis, r entity.DateRange) []entity.TimeSeriesPoint {
	points := make([]entity.TimeSeriesPoint, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		points = append(points, entity.TimeSeriesPoint{
			Date:  o.CreatedAt,
			Value: basis.Amount(o),
			Count: 1,
		})
	}
	return BucketDaily(points, r)
}

// WeekdayAverages averages daily totals per weekday, Monday first. Each day
// weighs the same regardless of how many orders it had; weekdays that never
// occur in daily are zero.
func WeekdayAverages(daily []entity.TimeSeriesPoint) []entity.WeekdayAverage {
	var (
		sums   [7]decimal.Decimal
		counts [7]int64
	)
	for _, p := range daily {
		wd := p.Date.Weekday()
		sums[wd] = sums[wd].Add(p.Value)
		counts[wd]++
	}

	result := make([]entity.WeekdayAverage, 0, len(weekdays))
	for _, wd := range weekdays {
		avg := decimal.Zero
		if counts[wd] > 0 {
			avg = sums[wd].Div(decimal.NewFromInt(counts[wd]))
		}
		result = append(result, entity.WeekdayAverage{
			Weekday: wd,
			Label:   wd.String()[:3],
			Value:   avg,
		})
	}
	return result
}

// HourlyAverages is the mean order amount per local hour of creation over the
// orders inside the range. Hours without orders are zero.
func HourlyAverages(orders []entity.Order, basis entity.RevenueBasis, r entity.DateRange) []entity.HourAverage {
	var (
		sums   [24]decimal.Decimal
		counts [24]int64
	)
	loc := r.Location()
	for _, o := range orders {
		if o.CreatedAt.IsZero() || !r.Contains(o.CreatedAt) {
			continue
		}
		h := o.CreatedAt.In(loc).Hour()
		sums[h] = sums[h].Add(basis.Amount(o))
		counts[h]++
	}

	result := make([]entity.HourAverage, 24)
	for h := range result {
		avg := decimal.Zero
		if counts[h] > 0 {
			avg = sums[h].Div(decimal.NewFromInt(counts[h]))
		}
		result[h] = entity.HourAverage{Hour: h, Value: avg}
	}
	return result
}

// Aggregate builds every chart of the sales series.
func Aggregate(orders []entity.Order, basis entity.RevenueBasis, r entity.DateRange) entity.Charts {
	daily := Daily(orders, basis, r)
	return entity.Charts{
		Daily:   daily,
		Weekday: WeekdayAverages(daily),
		Hourly:  HourlyAverages(orders, basis, r),
	}
}

// FromAdSpend turns pre-aggregated spend days into points.
func FromAdSpend(days []entity.AdSpendDay) []entity.TimeSeriesPoint {
	points := make([]entity.TimeSeriesPoint, 0, len(days))
	for _, d := range days {
		points = append(points, entity.TimeSeriesPoint{Date: d.Date, Value: d.Spend, Count: 1})
	}
	return points
}

// Total sums the values of points.
func Total(points []entity.TimeSeriesPoint) decimal.Decimal {
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Value)
	}
	return total
}
