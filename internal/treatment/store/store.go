package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ritacosta/belle/internal/treatment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, patient_name, treatment_name, date, price_paid,
// amount_paid, payment_status, product_cost, notes, created_at, updated_at, deleted_at
func scanTreatment(s scanner) (*treatment.Treatment, error) {
	var t treatment.Treatment

	var statusStr string

	var notes sql.NullString

	if err := s.Scan(
		&t.ID, &t.PatientName, &t.TreatmentName, &t.Date,
		&t.PricePaid, &t.AmountPaid, &statusStr, &t.ProductCost,
		&notes, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	); err != nil {
		return nil, err
	}

	t.PaymentStatus = treatment.PaymentStatus(statusStr)
	t.Notes = notes.String

	return &t, nil
}

const selectTreatmentColumns = `
	id, patient_name, treatment_name, date, price_paid,
	amount_paid, payment_status, product_cost, notes, created_at, updated_at, deleted_at
`

func (s *Store) CreateTreatment(ctx context.Context, t *treatment.Treatment) error {
	query := `
		INSERT INTO treatments (patient_name, treatment_name, date, price_paid, amount_paid, payment_status, product_cost, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.PatientName,
		t.TreatmentName,
		t.Date,
		t.PricePaid,
		t.AmountPaid,
		t.PaymentStatus,
		t.ProductCost,
		t.Notes,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating treatment: %w", err)
	}

	return nil
}

func (s *Store) GetTreatment(ctx context.Context, id uuid.UUID) (*treatment.Treatment, error) {
	query := `SELECT ` + selectTreatmentColumns + `
		FROM treatments
		WHERE id = $1 AND deleted_at IS NULL`

	t, err := scanTreatment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, treatment.ErrNotFound
		}

		return nil, fmt.Errorf("getting treatment: %w", err)
	}

	return t, nil
}

func (s *Store) ListTreatments(ctx context.Context, filter treatment.ListFilter) ([]*treatment.Treatment, error) {
	query := `SELECT ` + selectTreatmentColumns + `
		FROM treatments
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND payment_status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing treatments: %w", err)
	}
	defer rows.Close()

	var treatments []*treatment.Treatment

	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			// A single unreadable row must not take down the whole
			// aggregation path that feeds on this list.
			slog.Warn("skipping unreadable treatment row", "error", err)
			continue
		}

		treatments = append(treatments, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating treatment rows: %w", err)
	}

	return treatments, nil
}

func (s *Store) UpdateTreatment(ctx context.Context, t *treatment.Treatment) error {
	query := `
		UPDATE treatments
		SET patient_name = $1, treatment_name = $2, date = $3, price_paid = $4,
		    amount_paid = $5, payment_status = $6, product_cost = $7, notes = $8, updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		t.PatientName,
		t.TreatmentName,
		t.Date,
		t.PricePaid,
		t.AmountPaid,
		t.PaymentStatus,
		t.ProductCost,
		t.Notes,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating treatment: %w", err)
	}

	return nil
}

func (s *Store) DeleteTreatment(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE treatments
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting treatment: %w", err)
	}

	return nil
}
