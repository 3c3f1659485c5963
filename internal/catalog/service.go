package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	UpdateEntry(ctx context.Context, e *Entry) error
	ListEntries(ctx context.Context, activeOnly bool) ([]*Entry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	FindCategory(ctx context.Context, treatmentName string) (string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name               string
	Category           string
	DefaultPrice       decimal.Decimal
	DefaultProductCost decimal.Decimal
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Entry, error) {
	e := &Entry{
		Name:               params.Name,
		Category:           params.Category,
		DefaultPrice:       params.DefaultPrice,
		DefaultProductCost: params.DefaultProductCost,
		Active:             true,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.GetEntry(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, e *Entry) error {
	return s.repo.UpdateEntry(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, id)
}

// ResolveCategory maps a treatment name to its catalog category. Unknown
// or unmatched names resolve to CategoryOther; lookup errors do too, so a
// flaky catalog read never breaks a report.
func (s *Service) ResolveCategory(ctx context.Context, treatmentName string) string {
	if treatmentName == "" {
		return CategoryOther
	}

	category, err := s.repo.FindCategory(ctx, treatmentName)
	if err != nil || category == "" {
		return CategoryOther
	}

	return category
}
