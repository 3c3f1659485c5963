// Package report computes the dashboard's financial rollups. Everything in
// this file is a pure function of the supplied record collections and the
// reporting window; persistence is the service's concern.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ritacosta/belle/internal/catalog"
	"github.com/ritacosta/belle/internal/expense"
	"github.com/ritacosta/belle/internal/timeframe"
	"github.com/ritacosta/belle/internal/treatment"
)

// Totals is the headline rollup for a reporting window.
type Totals struct {
	Revenue     decimal.Decimal
	Costs       decimal.Decimal
	Profit      decimal.Decimal
	Outstanding decimal.Decimal
}

// ComputeTotals sums revenue, costs and profit over the window.
//
// Revenue counts each treatment's recognized amount; costs are expense
// amounts plus treatment product costs. Outstanding balances are summed
// over outstandingWin, which callers normally set to timeframe.AllTime():
// unpaid balances must stay visible no matter how narrow the reporting
// window is. The separate parameter keeps that asymmetry a caller choice.
func ComputeTotals(treatments []*treatment.Treatment, expenses []*expense.Expense, win, outstandingWin timeframe.Window) Totals {
	revenue := decimal.Zero
	costs := decimal.Zero
	outstanding := decimal.Zero

	for _, t := range treatments {
		if win.Contains(t.Date) {
			revenue = revenue.Add(t.RevenueRecognized())
			costs = costs.Add(t.ProductCost)
		}

		if outstandingWin.Contains(t.Date) {
			outstanding = outstanding.Add(t.Outstanding())
		}
	}

	for _, e := range expenses {
		if win.Contains(e.Date) {
			costs = costs.Add(e.Amount)
		}
	}

	return Totals{
		Revenue:     revenue,
		Costs:       costs,
		Profit:      revenue.Sub(costs),
		Outstanding: outstanding,
	}
}

// ComputeComparisonTotals returns totals for the window of equal length
// immediately preceding win, for trend deltas. All zeros when win is
// unbounded: an all-time window has no previous period. The Outstanding
// field is always zero here; it has no per-period meaning.
func ComputeComparisonTotals(treatments []*treatment.Treatment, expenses []*expense.Expense, win timeframe.Window) Totals {
	prev, ok := win.Previous()
	if !ok {
		return Totals{
			Revenue:     decimal.Zero,
			Costs:       decimal.Zero,
			Profit:      decimal.Zero,
			Outstanding: decimal.Zero,
		}
	}

	totals := ComputeTotals(treatments, expenses, prev, prev)
	totals.Outstanding = decimal.Zero

	return totals
}

// MonthlyPoint is one month of the profit time series.
type MonthlyPoint struct {
	Month   time.Time
	Label   string
	Revenue decimal.Decimal
	Costs   decimal.Decimal
	Profit  decimal.Decimal
}

// ComputeMonthlySeries returns one entry per calendar month touched by the
// window, in order. Months with no activity still appear with zero
// figures: charts and trend math downstream need a dense series.
func ComputeMonthlySeries(treatments []*treatment.Treatment, expenses []*expense.Expense, win timeframe.Window) []MonthlyPoint {
	months := seriesMonths(treatments, expenses, win)
	if len(months) == 0 {
		return nil
	}

	points := make([]MonthlyPoint, len(months))
	index := make(map[time.Time]int, len(months))

	for i, m := range months {
		points[i] = MonthlyPoint{
			Month:   m,
			Label:   m.Format("Jan 2006"),
			Revenue: decimal.Zero,
			Costs:   decimal.Zero,
			Profit:  decimal.Zero,
		}
		index[m] = i
	}

	for _, t := range treatments {
		i, ok := index[monthOf(t.Date)]
		if !ok || !win.Contains(t.Date) {
			continue
		}

		points[i].Revenue = points[i].Revenue.Add(t.RevenueRecognized())
		points[i].Costs = points[i].Costs.Add(t.ProductCost)
	}

	for _, e := range expenses {
		i, ok := index[monthOf(e.Date)]
		if !ok || !win.Contains(e.Date) {
			continue
		}

		points[i].Costs = points[i].Costs.Add(e.Amount)
	}

	for i := range points {
		points[i].Profit = points[i].Revenue.Sub(points[i].Costs)
	}

	return points
}

// CashFlowPoint is one month of cash movement.
type CashFlowPoint struct {
	Month   time.Time
	Label   string
	CashIn  decimal.Decimal
	CashOut decimal.Decimal
}

// ComputeCashFlowSeries is the cash view of the monthly series: cash in is
// recognized revenue, cash out is expenses only. Product costs are baked
// into treatment pricing rather than paid out separately, so they are not
// a cash movement and stay out of this series.
func ComputeCashFlowSeries(treatments []*treatment.Treatment, expenses []*expense.Expense, win timeframe.Window) []CashFlowPoint {
	months := seriesMonths(treatments, expenses, win)
	if len(months) == 0 {
		return nil
	}

	points := make([]CashFlowPoint, len(months))
	index := make(map[time.Time]int, len(months))

	for i, m := range months {
		points[i] = CashFlowPoint{
			Month:   m,
			Label:   m.Format("Jan 2006"),
			CashIn:  decimal.Zero,
			CashOut: decimal.Zero,
		}
		index[m] = i
	}

	for _, t := range treatments {
		i, ok := index[monthOf(t.Date)]
		if !ok || !win.Contains(t.Date) {
			continue
		}

		points[i].CashIn = points[i].CashIn.Add(t.RevenueRecognized())
	}

	for _, e := range expenses {
		i, ok := index[monthOf(e.Date)]
		if !ok || !win.Contains(e.Date) {
			continue
		}

		points[i].CashOut = points[i].CashOut.Add(e.Amount)
	}

	return points
}

// BreakdownEntry accumulates revenue, profit and count under one key,
// either a catalog category or a treatment name.
type BreakdownEntry struct {
	Key     string
	Revenue decimal.Decimal
	Profit  decimal.Decimal
	Count   int
}

// CategoryLookup resolves a treatment name to a reporting category.
type CategoryLookup func(treatmentName string) string

// ComputeCategoryBreakdown groups in-window treatments by catalog
// category, falling back to catalog.CategoryOther when the lookup comes up
// empty. Entries are sorted by revenue, highest first.
func ComputeCategoryBreakdown(treatments []*treatment.Treatment, win timeframe.Window, lookup CategoryLookup) []BreakdownEntry {
	return computeBreakdown(treatments, win, func(t *treatment.Treatment) string {
		if lookup == nil {
			return catalog.CategoryOther
		}

		category := lookup(t.TreatmentName)
		if category == "" {
			return catalog.CategoryOther
		}

		return category
	})
}

// ComputeTreatmentBreakdown is the same accumulation keyed by treatment
// name. Unnamed treatments land in the catalog.CategoryOther bucket.
func ComputeTreatmentBreakdown(treatments []*treatment.Treatment, win timeframe.Window) []BreakdownEntry {
	return computeBreakdown(treatments, win, func(t *treatment.Treatment) string {
		if t.TreatmentName == "" {
			return catalog.CategoryOther
		}

		return t.TreatmentName
	})
}

func computeBreakdown(treatments []*treatment.Treatment, win timeframe.Window, keyOf func(*treatment.Treatment) string) []BreakdownEntry {
	buckets := make(map[string]*BreakdownEntry)

	for _, t := range treatments {
		if !win.Contains(t.Date) {
			continue
		}

		key := keyOf(t)

		entry, ok := buckets[key]
		if !ok {
			entry = &BreakdownEntry{
				Key:     key,
				Revenue: decimal.Zero,
				Profit:  decimal.Zero,
			}
			buckets[key] = entry
		}

		revenue := t.RevenueRecognized()
		entry.Revenue = entry.Revenue.Add(revenue)
		entry.Profit = entry.Profit.Add(revenue.Sub(t.ProductCost))
		entry.Count++
	}

	entries := make([]BreakdownEntry, 0, len(buckets))
	for _, entry := range buckets {
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Revenue.Equal(entries[j].Revenue) {
			return entries[i].Revenue.GreaterThan(entries[j].Revenue)
		}

		return entries[i].Key < entries[j].Key
	})

	return entries
}

// seriesMonths resolves the month axis for a series. Bounded windows use
// their own span; an unbounded window derives it from the earliest and
// latest record dates, yielding nothing when there are no records.
func seriesMonths(treatments []*treatment.Treatment, expenses []*expense.Expense, win timeframe.Window) []time.Time {
	if !win.Unbounded {
		return win.Months()
	}

	var minDate, maxDate time.Time

	observe := func(d time.Time) {
		if minDate.IsZero() || d.Before(minDate) {
			minDate = d
		}

		if maxDate.IsZero() || d.After(maxDate) {
			maxDate = d
		}
	}

	for _, t := range treatments {
		observe(t.Date)
	}

	for _, e := range expenses {
		observe(e.Date)
	}

	if minDate.IsZero() {
		return nil
	}

	var months []time.Time

	last := monthOf(maxDate)
	for m := monthOf(minDate); !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}

	return months
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
