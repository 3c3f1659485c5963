package treatment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("treatment not found")

// PaymentStatus represents how much of a treatment's price has been collected.
type PaymentStatus string

const (
	StatusPaid          PaymentStatus = "paid"
	StatusPending       PaymentStatus = "pending"
	StatusPartiallyPaid PaymentStatus = "partially_paid"
)

// Treatment represents a billable clinical event.
type Treatment struct {
	ID            uuid.UUID
	PatientName   string
	TreatmentName string
	Date          time.Time
	PricePaid     decimal.Decimal
	AmountPaid    decimal.Decimal
	PaymentStatus PaymentStatus
	ProductCost   decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}

// RevenueRecognized returns the portion of the price counted as earned
// income: the full price once paid, nothing while pending, and the amount
// collected so far (capped at the price) when partially paid.
func (t *Treatment) RevenueRecognized() decimal.Decimal {
	switch t.PaymentStatus {
	case StatusPaid:
		return t.PricePaid
	case StatusPartiallyPaid:
		if t.AmountPaid.GreaterThan(t.PricePaid) {
			return t.PricePaid
		}

		return t.AmountPaid
	}

	return decimal.Zero
}

// Outstanding returns the unpaid portion of the price. Never negative.
func (t *Treatment) Outstanding() decimal.Decimal {
	if t.PaymentStatus == StatusPaid {
		return decimal.Zero
	}

	balance := t.PricePaid.Sub(t.RevenueRecognized())
	if balance.IsNegative() {
		return decimal.Zero
	}

	return balance
}
