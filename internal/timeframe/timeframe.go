package timeframe

import (
	"time"
)

// Preset names a predefined reporting window relative to "now".
type Preset string

const (
	PresetThisMonth   Preset = "this-month"
	PresetLastMonth   Preset = "last-month"
	PresetLast3Months Preset = "last-3-months"
	PresetLast6Months Preset = "last-6-months"
	PresetYearToDate  Preset = "year-to-date"
	PresetCustom      Preset = "custom"
	PresetAllTime     Preset = "all-time"
)

// Window is an inclusive date range. An unbounded window matches every date.
type Window struct {
	Start     time.Time
	End       time.Time
	Unbounded bool
}

// AllTime returns the unbounded window.
func AllTime() Window {
	return Window{Unbounded: true}
}

// Resolve maps a preset to a concrete window relative to now.
//
// For PresetCustom, a missing side falls back to the corresponding
// this-month bound; an inverted range (end before start) falls back to
// this-month entirely. Callers get a window either way, never an error.
func Resolve(preset Preset, customStart, customEnd *time.Time, now time.Time) Window {
	switch preset {
	case PresetThisMonth:
		return monthWindow(now)
	case PresetLastMonth:
		// Shift the month anchor, not now itself: Mar 31 minus one month
		// normalizes past Feb and lands back in March.
		return monthWindow(firstOfMonth(now).AddDate(0, -1, 0))
	case PresetLast3Months:
		first := firstOfMonth(now).AddDate(0, -2, 0)
		return newWindow(first, lastOfMonth(now))
	case PresetLast6Months:
		first := firstOfMonth(now).AddDate(0, -5, 0)
		return newWindow(first, lastOfMonth(now))
	case PresetYearToDate:
		return newWindow(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), now)
	case PresetCustom:
		return resolveCustom(customStart, customEnd, now)
	case PresetAllTime:
		return AllTime()
	}

	return monthWindow(now)
}

func resolveCustom(customStart, customEnd *time.Time, now time.Time) Window {
	start := firstOfMonth(now)
	if customStart != nil {
		start = *customStart
	}

	end := lastOfMonth(now)
	if customEnd != nil {
		end = *customEnd
	}

	if dateOnly(end).Before(dateOnly(start)) {
		return monthWindow(now)
	}

	return newWindow(start, end)
}

// Contains reports whether date falls inside the window, ignoring
// time-of-day on both the date and the window bounds.
func (w Window) Contains(date time.Time) bool {
	if w.Unbounded {
		return true
	}

	d := dateOnly(date)

	return !d.Before(dateOnly(w.Start)) && !d.After(dateOnly(w.End))
}

// Days returns the number of calendar days covered by the window.
func (w Window) Days() int {
	if w.Unbounded {
		return 0
	}

	return int(dateOnly(w.End).Sub(dateOnly(w.Start)).Hours()/24) + 1
}

// Previous returns the immediately preceding window of equal length.
// The second return value is false for unbounded windows, which have no
// meaningful predecessor.
func (w Window) Previous() (Window, bool) {
	if w.Unbounded {
		return Window{}, false
	}

	end := dateOnly(w.Start).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(w.Days() - 1))

	return newWindow(start, end), true
}

// Months returns the first day of every calendar month touched by the
// window, in order. Nil for unbounded windows.
func (w Window) Months() []time.Time {
	if w.Unbounded {
		return nil
	}

	var months []time.Time

	last := firstOfMonth(w.End)
	for m := firstOfMonth(w.Start); !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}

	return months
}

// newWindow normalizes the bounds so start is snapped to the beginning of
// its day and end to the last second of its day, avoiding boundary
// exclusion when record dates carry a time-of-day component.
func newWindow(start, end time.Time) Window {
	return Window{
		Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		End:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC),
	}
}

func monthWindow(t time.Time) Window {
	return newWindow(firstOfMonth(t), lastOfMonth(t))
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func lastOfMonth(t time.Time) time.Time {
	return firstOfMonth(t).AddDate(0, 1, -1)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
