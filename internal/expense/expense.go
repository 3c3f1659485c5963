package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("expense not found")

// Expense represents a one-off or auto-generated cost.
//
// AutoGenerated rows are created exclusively by the recurring engine and
// are otherwise ordinary expenses: they never recur themselves.
type Expense struct {
	ID            uuid.UUID
	Date          time.Time
	Category      string
	Amount        decimal.Decimal
	Notes         string
	Recurring     bool
	AutoGenerated bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}
