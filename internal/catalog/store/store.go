package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ritacosta/belle/internal/catalog"
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

func scanEntry(s scanner) (*catalog.Entry, error) {
	var e catalog.Entry

	if err := s.Scan(
		&e.ID, &e.Name, &e.Category, &e.DefaultPrice, &e.DefaultProductCost,
		&e.Active, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

const selectEntryColumns = `
	id, name, category, default_price, default_product_cost, active, created_at, updated_at
`

func (s *Store) CreateEntry(ctx context.Context, e *catalog.Entry) error {
	query := `
		INSERT INTO catalog_entries (name, category, default_price, default_product_cost, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Name,
		e.Category,
		e.DefaultPrice,
		e.DefaultProductCost,
		e.Active,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating catalog entry: %w", err)
	}

	return nil
}

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*catalog.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM catalog_entries
		WHERE id = $1`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting catalog entry: %w", err)
	}

	return e, nil
}

func (s *Store) ListEntries(ctx context.Context, activeOnly bool) ([]*catalog.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM catalog_entries`

	if activeOnly {
		query += " WHERE active"
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing catalog entries: %w", err)
	}
	defer rows.Close()

	var entries []*catalog.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning catalog entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, nil
}

func (s *Store) UpdateEntry(ctx context.Context, e *catalog.Entry) error {
	query := `
		UPDATE catalog_entries
		SET name = $1, category = $2, default_price = $3, default_product_cost = $4, active = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		e.Name,
		e.Category,
		e.DefaultPrice,
		e.DefaultProductCost,
		e.Active,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating catalog entry: %w", err)
	}

	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM catalog_entries WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting catalog entry: %w", err)
	}

	return nil
}

// FindCategory resolves a treatment name to its catalog category with a
// case-insensitive exact match. Empty string when nothing matches.
func (s *Store) FindCategory(ctx context.Context, treatmentName string) (string, error) {
	query := `
		SELECT category
		FROM catalog_entries
		WHERE LOWER(name) = LOWER($1)
		ORDER BY active DESC, created_at DESC
		LIMIT 1
	`

	var category string

	err := s.db.QueryRowContext(ctx, query, treatmentName).Scan(&category)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding category: %w", err)
	}

	return category, nil
}
