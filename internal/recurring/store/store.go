package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ritacosta/belle/internal/recurring"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecurringExpense(s scanner) (*recurring.RecurringExpense, error) {
	var r recurring.RecurringExpense

	var frequencyStr string

	var notes sql.NullString

	if err := s.Scan(
		&r.ID, &r.Category, &r.Amount, &notes, &frequencyStr,
		&r.Active, &r.LastGeneratedAt, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.Frequency = recurring.Frequency(frequencyStr)
	r.Notes = notes.String

	return &r, nil
}

const selectRecurringColumns = `
	id, category, amount, notes, frequency, active, last_generated_at, created_at, updated_at
`

func (s *Store) CreateRecurringExpense(ctx context.Context, r *recurring.RecurringExpense) error {
	query := `
		INSERT INTO recurring_expenses (category, amount, notes, frequency, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.Category,
		r.Amount,
		r.Notes,
		r.Frequency,
		r.Active,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating recurring expense: %w", err)
	}

	return nil
}

func (s *Store) GetRecurringExpense(ctx context.Context, id uuid.UUID) (*recurring.RecurringExpense, error) {
	query := `SELECT ` + selectRecurringColumns + `
		FROM recurring_expenses
		WHERE id = $1`

	r, err := scanRecurringExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recurring.ErrNotFound
		}

		return nil, fmt.Errorf("getting recurring expense: %w", err)
	}

	return r, nil
}

func (s *Store) ListRecurringExpenses(ctx context.Context, activeOnly bool) ([]*recurring.RecurringExpense, error) {
	query := `SELECT ` + selectRecurringColumns + `
		FROM recurring_expenses`

	if activeOnly {
		query += " WHERE active"
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recurring expenses: %w", err)
	}
	defer rows.Close()

	var definitions []*recurring.RecurringExpense

	for rows.Next() {
		r, err := scanRecurringExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring expense: %w", err)
		}

		definitions = append(definitions, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recurring expense rows: %w", err)
	}

	return definitions, nil
}

func (s *Store) UpdateRecurringExpense(ctx context.Context, r *recurring.RecurringExpense) error {
	query := `
		UPDATE recurring_expenses
		SET category = $1, amount = $2, notes = $3, frequency = $4, active = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		r.Category,
		r.Amount,
		r.Notes,
		r.Frequency,
		r.Active,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating recurring expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteRecurringExpense(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM recurring_expenses WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting recurring expense: %w", err)
	}

	return nil
}

func (s *Store) UpdateLastGenerated(ctx context.Context, id uuid.UUID, date time.Time) error {
	query := `
		UPDATE recurring_expenses
		SET last_generated_at = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, date, id)
	if err != nil {
		return fmt.Errorf("updating last generated marker: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return recurring.ErrNotFound
	}

	return nil
}
