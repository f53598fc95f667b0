package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func baseParams() Params {
	return Params{
		StartDate:      date(2024, time.January, 1), // Monday
		EndDate:        date(2024, time.January, 5),
		StartTime:      "09:00",
		EndTime:        "15:00",
		Repeats:        true,
		Frequency:      domain.FrequencyDaily,
		RecurrenceEnds: domain.RecurrenceEndsNever,
	}
}

func TestExpand_DailyNoFilter(t *testing.T) {
	occurrences, err := Expand(baseParams())
	require.NoError(t, err)

	require.Len(t, occurrences, 5)
	for i, occ := range occurrences {
		assert.Equal(t, date(2024, time.January, 1+i), occ.Date)
		assert.Equal(t, "09:00", occ.StartTime.String())
		assert.Equal(t, "15:00", occ.EndTime.String())
	}
}

func TestExpand_Deterministic(t *testing.T) {
	p := baseParams()
	p.EndDate = date(2024, time.March, 31)
	p.Frequency = domain.FrequencyWeekly
	p.DaysOfWeek = []domain.Weekday{domain.WeekdayMon}

	first, err := Expand(p)
	require.NoError(t, err)
	second, err := Expand(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpand_NonRepeating(t *testing.T) {
	p := baseParams()
	p.Repeats = false
	// day-of-week filter is ignored for non-repeating programs
	p.DaysOfWeek = []domain.Weekday{domain.WeekdaySun}

	occurrences, err := Expand(p)
	require.NoError(t, err)

	require.Len(t, occurrences, 1)
	assert.Equal(t, date(2024, time.January, 1), occurrences[0].Date)
}

func TestExpand_WeeklyWithDayFilter(t *testing.T) {
	p := baseParams()
	p.EndDate = date(2024, time.January, 31)
	p.Frequency = domain.FrequencyWeekly
	p.DaysOfWeek = []domain.Weekday{domain.WeekdayMon, domain.WeekdayWed}

	occurrences, err := Expand(p)
	require.NoError(t, err)

	// Every Monday and Wednesday in January 2024, starting from the first
	// matching date on/after startDate:
	// Mon 01, Wed 03, Mon 08, Wed 10, ... Mon 29, Wed 31.
	require.Len(t, occurrences, 10)
	assert.Equal(t, date(2024, time.January, 1), occurrences[0].Date)
	assert.Equal(t, date(2024, time.January, 3), occurrences[1].Date)
	assert.Equal(t, date(2024, time.January, 31), occurrences[9].Date)
	for _, occ := range occurrences {
		wd := occ.Date.Weekday()
		assert.True(t, wd == time.Monday || wd == time.Wednesday, "unexpected weekday %s", wd)
	}
}

func TestExpand_WeeklyWithoutFilterPinsStartWeekday(t *testing.T) {
	p := baseParams()
	p.EndDate = date(2024, time.January, 31)
	p.Frequency = domain.FrequencyWeekly

	occurrences, err := Expand(p)
	require.NoError(t, err)

	// 7-day stepping from Monday 2024-01-01: 01, 08, 15, 22, 29.
	require.Len(t, occurrences, 5)
	for _, occ := range occurrences {
		assert.Equal(t, time.Monday, occ.Date.Weekday())
	}
}

func TestExpand_DailyWithDayFilter(t *testing.T) {
	p := baseParams()
	p.EndDate = date(2024, time.January, 14)
	p.DaysOfWeek = []domain.Weekday{domain.WeekdayMon, domain.WeekdayWed}

	occurrences, err := Expand(p)
	require.NoError(t, err)

	// Daily stepping with a weekday filter thins the sequence:
	// Mon 01, Wed 03, Mon 08, Wed 10.
	expected := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 3),
		date(2024, time.January, 8),
		date(2024, time.January, 10),
	}
	require.Len(t, occurrences, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, occurrences[i].Date)
	}
}

func TestExpand_AfterNTermination(t *testing.T) {
	p := baseParams()
	p.EndDate = date(2024, time.December, 31)
	p.RecurrenceEnds = domain.RecurrenceEndsAfterN
	p.RecurrenceCount = ptr.Ptr(3)

	occurrences, err := Expand(p)
	require.NoError(t, err)

	require.Len(t, occurrences, 3)
	assert.Equal(t, date(2024, time.January, 3), occurrences[2].Date)
}

func TestExpand_AfterNCountsEmittedOccurrencesOnly(t *testing.T) {
	p := baseParams()
	p.EndDate = date(2024, time.February, 29)
	p.DaysOfWeek = []domain.Weekday{domain.WeekdayFri}
	p.RecurrenceEnds = domain.RecurrenceEndsAfterN
	p.RecurrenceCount = ptr.Ptr(4)

	occurrences, err := Expand(p)
	require.NoError(t, err)

	// Fridays: 05, 12, 19, 26. Skipped days must not consume the count.
	require.Len(t, occurrences, 4)
	assert.Equal(t, date(2024, time.January, 26), occurrences[3].Date)
}

func TestExpand_OnDateClampsIteration(t *testing.T) {
	p := baseParams()
	p.EndDate = date(2024, time.January, 31)
	p.RecurrenceEnds = domain.RecurrenceEndsOnDate
	p.RecurrenceEndDate = ptr.Ptr(date(2024, time.January, 3))

	occurrences, err := Expand(p)
	require.NoError(t, err)

	require.Len(t, occurrences, 3)
	assert.Equal(t, date(2024, time.January, 3), occurrences[2].Date)
}

func TestExpand_Ascending(t *testing.T) {
	p := baseParams()
	p.EndDate = date(2024, time.March, 31)
	p.DaysOfWeek = []domain.Weekday{domain.WeekdayTue, domain.WeekdaySat}

	occurrences, err := Expand(p)
	require.NoError(t, err)
	require.NotEmpty(t, occurrences)

	for i := 1; i < len(occurrences); i++ {
		assert.True(t, occurrences[i].Date.After(occurrences[i-1].Date),
			"occurrence %d is not after occurrence %d", i, i-1)
	}
}

func TestExpand_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"missing startDate", func(p *Params) { p.StartDate = time.Time{} }},
		{"missing endDate", func(p *Params) { p.EndDate = time.Time{} }},
		{"startDate after endDate", func(p *Params) { p.StartDate = date(2024, time.February, 1) }},
		{"missing startTime", func(p *Params) { p.StartTime = "" }},
		{"malformed startTime", func(p *Params) { p.StartTime = "9am" }},
		{"endTime before startTime", func(p *Params) { p.EndTime = "08:00" }},
		{"unknown frequency", func(p *Params) { p.Frequency = "monthly" }},
		{"afterN without count", func(p *Params) {
			p.RecurrenceEnds = domain.RecurrenceEndsAfterN
			p.RecurrenceCount = nil
		}},
		{"afterN with zero count", func(p *Params) {
			p.RecurrenceEnds = domain.RecurrenceEndsAfterN
			p.RecurrenceCount = ptr.Ptr(0)
		}},
		{"onDate without date", func(p *Params) {
			p.RecurrenceEnds = domain.RecurrenceEndsOnDate
			p.RecurrenceEndDate = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.mutate(&p)

			_, err := Expand(p)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
