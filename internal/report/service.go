package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/ritacosta/belle/internal/catalog"
	"github.com/ritacosta/belle/internal/expense"
	"github.com/ritacosta/belle/internal/timeframe"
	"github.com/ritacosta/belle/internal/treatment"
)

// Service feeds the pure aggregation functions with persisted records.
// It never mutates anything; materializing due recurring expenses before a
// dashboard read is the recurring service's job, triggered separately.
type Service struct {
	treatments *treatment.Service
	expenses   *expense.Service
	catalog    *catalog.Service
}

func NewService(treatments *treatment.Service, expenses *expense.Service, catalogService *catalog.Service) *Service {
	return &Service{
		treatments: treatments,
		expenses:   expenses,
		catalog:    catalogService,
	}
}

// Summary pairs the current window's totals with the preceding period's.
type Summary struct {
	Totals   Totals
	Previous Totals
}

func (s *Service) Summary(ctx context.Context, win timeframe.Window) (*Summary, error) {
	treatments, expenses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Totals:   ComputeTotals(treatments, expenses, win, timeframe.AllTime()),
		Previous: ComputeComparisonTotals(treatments, expenses, win),
	}, nil
}

func (s *Service) MonthlySeries(ctx context.Context, win timeframe.Window) ([]MonthlyPoint, error) {
	treatments, expenses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeMonthlySeries(treatments, expenses, win), nil
}

func (s *Service) CashFlowSeries(ctx context.Context, win timeframe.Window) ([]CashFlowPoint, error) {
	treatments, expenses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeCashFlowSeries(treatments, expenses, win), nil
}

func (s *Service) CategoryBreakdown(ctx context.Context, win timeframe.Window) ([]BreakdownEntry, error) {
	treatments, err := s.treatments.List(ctx, treatment.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing treatments: %w", err)
	}

	return ComputeCategoryBreakdown(treatments, win, s.categoryLookup(ctx)), nil
}

func (s *Service) TreatmentBreakdown(ctx context.Context, win timeframe.Window) ([]BreakdownEntry, error) {
	treatments, err := s.treatments.List(ctx, treatment.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing treatments: %w", err)
	}

	return ComputeTreatmentBreakdown(treatments, win), nil
}

// load fetches the full record collections. Outstanding balances are
// all-time, so the treatment list cannot be pre-filtered by the window.
func (s *Service) load(ctx context.Context) ([]*treatment.Treatment, []*expense.Expense, error) {
	treatments, err := s.treatments.List(ctx, treatment.ListFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("listing treatments: %w", err)
	}

	expenses, err := s.expenses.List(ctx, expense.ListFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("listing expenses: %w", err)
	}

	return treatments, expenses, nil
}

// categoryLookup delegates name resolution to the catalog service, which
// prefers active entries on name collisions. Results are memoized per
// distinct name so a breakdown does one lookup per name, not per
// treatment.
func (s *Service) categoryLookup(ctx context.Context) CategoryLookup {
	cache := make(map[string]string)

	return func(treatmentName string) string {
		key := strings.ToLower(treatmentName)

		category, ok := cache[key]
		if !ok {
			category = s.catalog.ResolveCategory(ctx, treatmentName)
			cache[key] = category
		}

		return category
	}
}
