package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ritacosta/belle/internal/expense"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=recurring
type Repository interface {
	CreateRecurringExpense(ctx context.Context, r *RecurringExpense) error
	GetRecurringExpense(ctx context.Context, id uuid.UUID) (*RecurringExpense, error)
	UpdateRecurringExpense(ctx context.Context, r *RecurringExpense) error
	ListRecurringExpenses(ctx context.Context, activeOnly bool) ([]*RecurringExpense, error)
	DeleteRecurringExpense(ctx context.Context, id uuid.UUID) error

	UpdateLastGenerated(ctx context.Context, id uuid.UUID, date time.Time) error
}

// ExpenseCreator is the slice of the expense service the engine needs to
// materialize an occurrence.
type ExpenseCreator interface {
	Create(ctx context.Context, params expense.CreateParams) (*expense.Expense, error)
}

type Service struct {
	repo     Repository
	expenses ExpenseCreator
}

func NewService(repo Repository, expenses ExpenseCreator) *Service {
	return &Service{repo: repo, expenses: expenses}
}

type CreateParams struct {
	Category  string
	Amount    decimal.Decimal
	Notes     string
	Frequency Frequency
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*RecurringExpense, error) {
	if !params.Frequency.Valid() {
		return nil, fmt.Errorf("invalid frequency %q", params.Frequency)
	}

	r := &RecurringExpense{
		Category:  params.Category,
		Amount:    params.Amount,
		Notes:     params.Notes,
		Frequency: params.Frequency,
		Active:    true,
	}
	if err := s.repo.CreateRecurringExpense(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*RecurringExpense, error) {
	return s.repo.GetRecurringExpense(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*RecurringExpense, error) {
	return s.repo.ListRecurringExpenses(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, r *RecurringExpense) error {
	if !r.Frequency.Valid() {
		return fmt.Errorf("invalid frequency %q", r.Frequency)
	}

	return s.repo.UpdateRecurringExpense(ctx, r)
}

func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*RecurringExpense, error) {
	r, err := s.repo.GetRecurringExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Active = active
	if err := s.repo.UpdateRecurringExpense(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRecurringExpense(ctx, id)
}

// Result reports what a materialization pass did.
type Result struct {
	Generated []*expense.Expense
	Errors    []DefinitionError
}

// DefinitionError ties a failed materialization to its definition.
type DefinitionError struct {
	DefinitionID uuid.UUID
	Category     string
	Err          error
}

func (e DefinitionError) Error() string {
	return fmt.Sprintf("recurring expense %s (%s): %v", e.DefinitionID, e.Category, e.Err)
}

// MaterializeDue generates an expense for every active definition that is
// due at now, then advances its LastGeneratedAt marker. Safe to invoke
// repeatedly: a definition that already fired in the current period is not
// due again.
//
// Definitions are processed sequentially and in isolation: one failure is
// recorded in the result and logged, never aborting the rest of the batch.
// The marker is only advanced after the expense insert succeeds, so a
// failure between the two is corrected by the next invocation.
func (s *Service) MaterializeDue(ctx context.Context, now time.Time) (*Result, error) {
	definitions, err := s.repo.ListRecurringExpenses(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing recurring expenses: %w", err)
	}

	result := &Result{}

	for _, def := range definitions {
		if !def.DueAt(now) {
			continue
		}

		generated, err := s.materialize(ctx, def, now)
		if err != nil {
			slog.Error("failed to materialize recurring expense",
				"id", def.ID, "category", def.Category, "error", err)

			result.Errors = append(result.Errors, DefinitionError{
				DefinitionID: def.ID,
				Category:     def.Category,
				Err:          err,
			})

			continue
		}

		result.Generated = append(result.Generated, generated)
	}

	return result, nil
}

func (s *Service) materialize(ctx context.Context, def *RecurringExpense, now time.Time) (*expense.Expense, error) {
	date := def.MaterializationDate(now)

	notes := def.Notes
	if notes != "" {
		notes += " "
	}

	notes += "(auto-generated)"

	generated, err := s.expenses.Create(ctx, expense.CreateParams{
		Date:          date,
		Category:      def.Category,
		Amount:        def.Amount,
		Notes: notes,
		// Occurrences are ordinary expenses; only the definition is
		// recurring. AutoGenerated marks their provenance.
		Recurring:     false,
		AutoGenerated: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	// Marker moves only after the insert succeeded. A crash between the
	// two leaves a stale marker and the next pass re-fires; see the
	// service doc for why that trade-off is accepted.
	if err := s.repo.UpdateLastGenerated(ctx, def.ID, date); err != nil {
		return nil, fmt.Errorf("updating last generated marker: %w", err)
	}

	return generated, nil
}
