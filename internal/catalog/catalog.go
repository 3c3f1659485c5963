package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("catalog entry not found")

// CategoryOther is the bucket for treatments whose name has no catalog match.
const CategoryOther = "Other"

// Entry describes a treatment the clinic offers: its category for
// reporting plus default pricing for the booking flow.
type Entry struct {
	ID                 uuid.UUID
	Name               string
	Category           string
	DefaultPrice       decimal.Decimal
	DefaultProductCost decimal.Decimal
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
