package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ritacosta/belle/internal/expense"
	"github.com/ritacosta/belle/internal/report"
	"github.com/ritacosta/belle/internal/timeframe"
	"github.com/ritacosta/belle/internal/treatment"
)

// Pack is the bundle of files prepared for the accountant, plus the
// headline figures for the covered window.
type Pack struct {
	Files      []string
	Treatments []*treatment.Treatment
	Expenses   []*expense.Expense
	Totals     report.Totals
}

// Service assembles the quarterly/annual bookkeeping hand-off: one CSV of
// treatments, one of expenses, and a plain-text summary.
type Service struct {
	treatments *treatment.Service
	expenses   *expense.Service
}

func NewService(treatments *treatment.Service, expenses *expense.Service) *Service {
	return &Service{treatments: treatments, expenses: expenses}
}

// Export writes the CSV files for the window into outputDir.
func (s *Service) Export(ctx context.Context, win timeframe.Window, outputDir string) (*Pack, error) {
	filter := treatment.ListFilter{}
	expenseFilter := expense.ListFilter{}

	if !win.Unbounded {
		filter.StartDate = new(win.Start)
		filter.EndDate = new(win.End)
		expenseFilter.StartDate = new(win.Start)
		expenseFilter.EndDate = new(win.End)
	}

	treatments, err := s.treatments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing treatments: %w", err)
	}

	expenses, err := s.expenses.List(ctx, expenseFilter)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	pack := &Pack{
		Treatments: treatments,
		Expenses:   expenses,
		// Already filtered to the window, so totals aggregate everything.
		Totals: report.ComputeTotals(treatments, expenses, timeframe.AllTime(), timeframe.AllTime()),
	}

	treatmentsPath := filepath.Join(outputDir, "treatments.csv")
	if err := writeTreatmentsCSV(treatmentsPath, treatments); err != nil {
		return nil, fmt.Errorf("writing treatments csv: %w", err)
	}

	pack.Files = append(pack.Files, treatmentsPath)

	expensesPath := filepath.Join(outputDir, "expenses.csv")
	if err := writeExpensesCSV(expensesPath, expenses); err != nil {
		return nil, fmt.Errorf("writing expenses csv: %w", err)
	}

	pack.Files = append(pack.Files, expensesPath)

	return pack, nil
}

func writeTreatmentsCSV(path string, treatments []*treatment.Treatment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"date", "patient", "treatment", "price", "amount_paid", "status", "product_cost", "notes"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, t := range treatments {
		record := []string{
			t.Date.Format(time.DateOnly),
			t.PatientName,
			t.TreatmentName,
			t.PricePaid.StringFixed(2),
			t.AmountPaid.StringFixed(2),
			string(t.PaymentStatus),
			t.ProductCost.StringFixed(2),
			t.Notes,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

func writeExpensesCSV(path string, expenses []*expense.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"date", "category", "amount", "notes", "auto_generated"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range expenses {
		autoGenerated := ""
		if e.AutoGenerated {
			autoGenerated = "yes"
		}

		record := []string{
			e.Date.Format(time.DateOnly),
			e.Category,
			e.Amount.StringFixed(2),
			e.Notes,
			autoGenerated,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

// GenerateSummary produces the plain-text cover note sent to the
// accountant alongside the CSV files.
func (s *Service) GenerateSummary(pack *Pack) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Treatments: %d\n", len(pack.Treatments))
	fmt.Fprintf(&sb, "Expenses: %d\n", len(pack.Expenses))
	fmt.Fprintf(&sb, "Revenue: %s\n", pack.Totals.Revenue.StringFixed(2))
	fmt.Fprintf(&sb, "Costs: %s\n", pack.Totals.Costs.StringFixed(2))
	fmt.Fprintf(&sb, "Profit: %s\n", pack.Totals.Profit.StringFixed(2))
	fmt.Fprintf(&sb, "Outstanding balances: %s\n", pack.Totals.Outstanding.StringFixed(2))

	return sb.String()
}
