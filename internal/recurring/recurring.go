package recurring

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("recurring expense not found")

// Frequency is the cadence at which a recurring expense fires.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}

	return false
}

// RecurringExpense is a template that periodically spawns ordinary
// expenses. LastGeneratedAt records the date of the most recent spawn and
// is the sole guard against generating twice in the same period.
type RecurringExpense struct {
	ID              uuid.UUID
	Category        string
	Amount          decimal.Decimal
	Notes           string
	Frequency       Frequency
	Active          bool
	LastGeneratedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// DueAt reports whether the definition should fire at now.
//
// Monthly and yearly definitions compare period buckets (year-month and
// year respectively), so a marker anywhere inside the current bucket
// suppresses the fire. Weekly definitions fire once the marker is at least
// seven days old.
func (r *RecurringExpense) DueAt(now time.Time) bool {
	if !r.Active {
		return false
	}

	if r.LastGeneratedAt == nil {
		return true
	}

	last := *r.LastGeneratedAt

	switch r.Frequency {
	case FrequencyWeekly:
		return !last.After(now.AddDate(0, 0, -7))
	case FrequencyMonthly:
		return last.Year() != now.Year() || last.Month() != now.Month()
	case FrequencyYearly:
		return last.Year() != now.Year()
	}

	return false
}

// MaterializationDate returns the date stamped on the generated expense:
// the first of the month for monthly, January 1st for yearly, and the
// current day (not week-snapped) for weekly.
func (r *RecurringExpense) MaterializationDate(now time.Time) time.Time {
	switch r.Frequency {
	case FrequencyMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	case FrequencyYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
