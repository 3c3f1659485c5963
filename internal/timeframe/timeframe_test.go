package timeframe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritacosta/belle/internal/timeframe"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)

	type testCase struct {
		name        string
		preset      timeframe.Preset
		customStart *time.Time
		customEnd   *time.Time
		wantStart   time.Time
		wantEnd     time.Time
	}

	tests := []testCase{
		{
			name:      "ThisMonth",
			preset:    timeframe.PresetThisMonth,
			wantStart: date(2024, time.June, 1),
			wantEnd:   date(2024, time.June, 30),
		},
		{
			name:      "LastMonth",
			preset:    timeframe.PresetLastMonth,
			wantStart: date(2024, time.May, 1),
			wantEnd:   date(2024, time.May, 31),
		},
		{
			name:      "Last3Months",
			preset:    timeframe.PresetLast3Months,
			wantStart: date(2024, time.April, 1),
			wantEnd:   date(2024, time.June, 30),
		},
		{
			name:      "Last6Months",
			preset:    timeframe.PresetLast6Months,
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.June, 30),
		},
		{
			name:      "YearToDate",
			preset:    timeframe.PresetYearToDate,
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.June, 15),
		},
		{
			name:        "CustomBothSides",
			preset:      timeframe.PresetCustom,
			customStart: new(date(2024, time.February, 10)),
			customEnd:   new(date(2024, time.March, 20)),
			wantStart:   date(2024, time.February, 10),
			wantEnd:     date(2024, time.March, 20),
		},
		{
			name:      "CustomMissingStartFallsBackToThisMonthStart",
			preset:    timeframe.PresetCustom,
			customEnd: new(date(2024, time.June, 20)),
			wantStart: date(2024, time.June, 1),
			wantEnd:   date(2024, time.June, 20),
		},
		{
			name:        "CustomMissingEndFallsBackToThisMonthEnd",
			preset:      timeframe.PresetCustom,
			customStart: new(date(2024, time.June, 5)),
			wantStart:   date(2024, time.June, 5),
			wantEnd:     date(2024, time.June, 30),
		},
		{
			name:        "CustomInvertedFallsBackToThisMonth",
			preset:      timeframe.PresetCustom,
			customStart: new(date(2024, time.March, 20)),
			customEnd:   new(date(2024, time.March, 10)),
			wantStart:   date(2024, time.June, 1),
			wantEnd:     date(2024, time.June, 30),
		},
		{
			name:      "UnknownPresetDefaultsToThisMonth",
			preset:    timeframe.Preset("bogus"),
			wantStart: date(2024, time.June, 1),
			wantEnd:   date(2024, time.June, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := timeframe.Resolve(tt.preset, tt.customStart, tt.customEnd, now)

			assert.False(t, win.Unbounded)
			assert.Equal(t, tt.wantStart, win.Start)
			assert.Equal(t, tt.wantEnd.Year(), win.End.Year())
			assert.Equal(t, tt.wantEnd.Month(), win.End.Month())
			assert.Equal(t, tt.wantEnd.Day(), win.End.Day())
		})
	}

	// Month arithmetic from a month-end now must not normalize through
	// short months: Mar 31 minus one month is not Mar 3.
	monthEnd := []testCase{
		{
			name:      "LastMonthAtMarch31IsFebruary",
			preset:    timeframe.PresetLastMonth,
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "Last3MonthsAtMarch31StartsInJanuary",
			preset:    timeframe.PresetLast3Months,
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.March, 31),
		},
	}

	for _, tt := range monthEnd {
		t.Run(tt.name, func(t *testing.T) {
			win := timeframe.Resolve(tt.preset, nil, nil, date(2024, time.March, 31))

			assert.Equal(t, tt.wantStart, win.Start)
			assert.Equal(t, tt.wantEnd.Month(), win.End.Month())
			assert.Equal(t, tt.wantEnd.Day(), win.End.Day())
		})
	}

	t.Run("Last3MonthsAtApril30StartsInFebruary", func(t *testing.T) {
		win := timeframe.Resolve(timeframe.PresetLast3Months, nil, nil, date(2024, time.April, 30))

		assert.Equal(t, date(2024, time.February, 1), win.Start)
		assert.Equal(t, time.April, win.End.Month())
	})

	t.Run("AllTime", func(t *testing.T) {
		win := timeframe.Resolve(timeframe.PresetAllTime, nil, nil, now)
		assert.True(t, win.Unbounded)
	})
}

func TestWindow_Contains(t *testing.T) {
	win := timeframe.Resolve(timeframe.PresetCustom,
		new(date(2024, time.June, 1)),
		new(date(2024, time.June, 30)),
		date(2024, time.June, 15))

	type testCase struct {
		name string
		date time.Time
		want bool
	}

	tests := []testCase{
		{name: "StartBoundary", date: date(2024, time.June, 1), want: true},
		{name: "EndBoundary", date: date(2024, time.June, 30), want: true},
		{name: "EndBoundaryLateInDay", date: time.Date(2024, time.June, 30, 23, 45, 0, 0, time.UTC), want: true},
		{name: "Inside", date: date(2024, time.June, 15), want: true},
		{name: "DayBefore", date: date(2024, time.May, 31), want: false},
		{name: "DayAfter", date: date(2024, time.July, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, win.Contains(tt.date))
		})
	}

	t.Run("UnboundedContainsEverything", func(t *testing.T) {
		all := timeframe.AllTime()
		assert.True(t, all.Contains(date(1970, time.January, 1)))
		assert.True(t, all.Contains(date(2999, time.December, 31)))
	})
}

func TestWindow_Previous(t *testing.T) {
	t.Run("MonthWindow", func(t *testing.T) {
		win := timeframe.Resolve(timeframe.PresetThisMonth, nil, nil, date(2024, time.June, 15))

		prev, ok := win.Previous()
		require.True(t, ok)

		// June has 30 days, so the preceding window of equal length is
		// May 2nd through May 31st.
		assert.Equal(t, date(2024, time.May, 2), prev.Start)
		assert.Equal(t, 30, prev.Days())
		assert.True(t, prev.Contains(date(2024, time.May, 31)))
		assert.False(t, prev.Contains(date(2024, time.June, 1)))
	})

	t.Run("Unbounded", func(t *testing.T) {
		_, ok := timeframe.AllTime().Previous()
		assert.False(t, ok)
	})
}

func TestWindow_Months(t *testing.T) {
	win := timeframe.Resolve(timeframe.PresetCustom,
		new(date(2024, time.January, 15)),
		new(date(2024, time.March, 2)),
		date(2024, time.June, 15))

	months := win.Months()
	require.Len(t, months, 3)
	assert.Equal(t, date(2024, time.January, 1), months[0])
	assert.Equal(t, date(2024, time.February, 1), months[1])
	assert.Equal(t, date(2024, time.March, 1), months[2])

	assert.Nil(t, timeframe.AllTime().Months())
}
