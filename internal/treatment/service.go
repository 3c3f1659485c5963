package treatment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=treatment
type Repository interface {
	CreateTreatment(ctx context.Context, t *Treatment) error
	GetTreatment(ctx context.Context, id uuid.UUID) (*Treatment, error)
	UpdateTreatment(ctx context.Context, t *Treatment) error
	ListTreatments(ctx context.Context, filter ListFilter) ([]*Treatment, error)
	DeleteTreatment(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	PatientName   string
	TreatmentName string
	Date          time.Time
	PricePaid     decimal.Decimal
	AmountPaid    decimal.Decimal
	PaymentStatus PaymentStatus
	ProductCost   decimal.Decimal
	Notes         string
}

type ListFilter struct {
	Status    *PaymentStatus
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Treatment, error) {
	status := params.PaymentStatus
	if status == "" {
		status = StatusPending
	}

	t := &Treatment{
		PatientName:   params.PatientName,
		TreatmentName: params.TreatmentName,
		Date:          params.Date,
		PricePaid:     params.PricePaid,
		AmountPaid:    params.AmountPaid,
		PaymentStatus: status,
		ProductCost:   params.ProductCost,
		Notes:         params.Notes,
	}
	if err := s.repo.CreateTreatment(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	return s.repo.GetTreatment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Treatment, error) {
	return s.repo.ListTreatments(ctx, filter)
}

func (s *Service) Update(ctx context.Context, t *Treatment) error {
	return s.repo.UpdateTreatment(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTreatment(ctx, id)
}

// RecordPayment adds a payment against the treatment and moves its status
// forward: partially paid while the collected total is below the price,
// paid once it reaches it. The collected total is capped at the price.
func (s *Service) RecordPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Treatment, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("payment amount must not be negative")
	}

	t, err := s.repo.GetTreatment(ctx, id)
	if err != nil {
		return nil, err
	}

	collected := t.RevenueRecognized().Add(amount)
	if collected.GreaterThanOrEqual(t.PricePaid) {
		t.AmountPaid = t.PricePaid
		t.PaymentStatus = StatusPaid
	} else {
		t.AmountPaid = collected
		t.PaymentStatus = StatusPartiallyPaid
	}

	if err := s.repo.UpdateTreatment(ctx, t); err != nil {
		return nil, fmt.Errorf("recording payment: %w", err)
	}

	return t, nil
}
