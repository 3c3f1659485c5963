package recurring_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ritacosta/belle/internal/expense"
	"github.com/ritacosta/belle/internal/recurring"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    recurring.CreateParams
		setupMock func(m *recurring.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: recurring.CreateParams{
				Category:  "Rent",
				Amount:    decimal.NewFromInt(1200),
				Frequency: recurring.FrequencyMonthly,
			},
			setupMock: func(m *recurring.MockRepository) {
				m.EXPECT().
					CreateRecurringExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *recurring.RecurringExpense) error {
						r.ID = uuid.New()
						r.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "InvalidFrequency",
			params: recurring.CreateParams{
				Category:  "Rent",
				Amount:    decimal.NewFromInt(1200),
				Frequency: recurring.Frequency("fortnightly"),
			},
			setupMock: func(m *recurring.MockRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := recurring.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := recurring.NewService(repo, recurring.NewMockExpenseCreator(ctrl))
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Active)
		})
	}
}

func TestService_MaterializeDue(t *testing.T) {
	now := time.Date(2024, time.April, 5, 8, 0, 0, 0, time.UTC)
	firstOfApril := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	definition := func(category string, lastGen *time.Time) *recurring.RecurringExpense {
		return &recurring.RecurringExpense{
			ID:              uuid.New(),
			Category:        category,
			Amount:          decimal.NewFromInt(100),
			Frequency:       recurring.FrequencyMonthly,
			Active:          true,
			LastGeneratedAt: lastGen,
		}
	}

	t.Run("GeneratesDueDefinitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		due := definition("Rent", new(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
		notDue := definition("Software", new(firstOfApril))

		repo := recurring.NewMockRepository(ctrl)
		creator := recurring.NewMockExpenseCreator(ctrl)

		repo.EXPECT().
			ListRecurringExpenses(gomock.Any(), true).
			Return([]*recurring.RecurringExpense{due, notDue}, nil)

		creator.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params expense.CreateParams) (*expense.Expense, error) {
				assert.Equal(t, firstOfApril, params.Date)
				assert.Equal(t, "Rent", params.Category)
				assert.True(t, params.AutoGenerated)
				assert.False(t, params.Recurring, "occurrences are one-off expenses, only the definition recurs")
				assert.Contains(t, params.Notes, "(auto-generated)")

				return &expense.Expense{
					ID:       uuid.New(),
					Date:     params.Date,
					Category: params.Category,
					Amount:   params.Amount,
				}, nil
			})

		repo.EXPECT().UpdateLastGenerated(gomock.Any(), due.ID, firstOfApril).Return(nil)

		svc := recurring.NewService(repo, creator)
		result, err := svc.MaterializeDue(context.Background(), now)

		require.NoError(t, err)
		require.Len(t, result.Generated, 1)
		assert.Empty(t, result.Errors)
		assert.Equal(t, "Rent", result.Generated[0].Category)
	})

	t.Run("OneFailureDoesNotStopTheRest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		first := definition("Rent", nil)
		second := definition("Insurance", nil)
		third := definition("Utilities", nil)

		repo := recurring.NewMockRepository(ctrl)
		creator := recurring.NewMockExpenseCreator(ctrl)

		repo.EXPECT().
			ListRecurringExpenses(gomock.Any(), true).
			Return([]*recurring.RecurringExpense{first, second, third}, nil)

		creator.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params expense.CreateParams) (*expense.Expense, error) {
				if params.Category == "Insurance" {
					return nil, errors.New("db error")
				}

				return &expense.Expense{ID: uuid.New(), Category: params.Category}, nil
			}).
			Times(3)

		// The failed definition's marker must stay untouched so the next
		// pass retries it.
		repo.EXPECT().UpdateLastGenerated(gomock.Any(), first.ID, firstOfApril).Return(nil)
		repo.EXPECT().UpdateLastGenerated(gomock.Any(), third.ID, firstOfApril).Return(nil)

		svc := recurring.NewService(repo, creator)
		result, err := svc.MaterializeDue(context.Background(), now)

		require.NoError(t, err)
		assert.Len(t, result.Generated, 2)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, second.ID, result.Errors[0].DefinitionID)
		assert.Equal(t, "Insurance", result.Errors[0].Category)
	})

	t.Run("MarkerFailureReportedAsDefinitionError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		def := definition("Rent", nil)

		repo := recurring.NewMockRepository(ctrl)
		creator := recurring.NewMockExpenseCreator(ctrl)

		repo.EXPECT().
			ListRecurringExpenses(gomock.Any(), true).
			Return([]*recurring.RecurringExpense{def}, nil)

		creator.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&expense.Expense{ID: uuid.New()}, nil)

		repo.EXPECT().
			UpdateLastGenerated(gomock.Any(), def.ID, firstOfApril).
			Return(errors.New("db error"))

		svc := recurring.NewService(repo, creator)
		result, err := svc.MaterializeDue(context.Background(), now)

		require.NoError(t, err)
		assert.Empty(t, result.Generated)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, def.ID, result.Errors[0].DefinitionID)
	})

	t.Run("NothingDueDoesNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		def := definition("Rent", new(firstOfApril))

		repo := recurring.NewMockRepository(ctrl)

		repo.EXPECT().
			ListRecurringExpenses(gomock.Any(), true).
			Return([]*recurring.RecurringExpense{def}, nil)

		svc := recurring.NewService(repo, recurring.NewMockExpenseCreator(ctrl))
		result, err := svc.MaterializeDue(context.Background(), now)

		require.NoError(t, err)
		assert.Empty(t, result.Generated)
		assert.Empty(t, result.Errors)
	})

	t.Run("ListError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := recurring.NewMockRepository(ctrl)

		repo.EXPECT().
			ListRecurringExpenses(gomock.Any(), true).
			Return(nil, errors.New("db error"))

		svc := recurring.NewService(repo, recurring.NewMockExpenseCreator(ctrl))
		result, err := svc.MaterializeDue(context.Background(), now)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	def := &recurring.RecurringExpense{ID: id, Frequency: recurring.FrequencyMonthly, Active: true}

	repo := recurring.NewMockRepository(ctrl)
	repo.EXPECT().GetRecurringExpense(gomock.Any(), id).Return(def, nil)
	repo.EXPECT().UpdateRecurringExpense(gomock.Any(), def).Return(nil)

	svc := recurring.NewService(repo, recurring.NewMockExpenseCreator(ctrl))
	got, err := svc.SetActive(context.Background(), id, false)

	require.NoError(t, err)
	assert.False(t, got.Active)
}
