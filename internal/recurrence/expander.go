package recurrence

import (
	"fmt"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// Params carries the recurrence definition of a program.
// Expansion is a pure function of these fields: identical params always
// produce an identical occurrence sequence.
type Params struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Repeats    bool
	Frequency  domain.Frequency
	DaysOfWeek []domain.Weekday

	RecurrenceEnds    domain.RecurrenceEnds
	RecurrenceEndDate *time.Time
	RecurrenceCount   *int
}

// Occurrence is one concrete date produced by expanding a recurrence rule,
// paired with the program's fixed time of day.
type Occurrence struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Expand materializes the recurrence into an ascending list of occurrences.
//
// Semantics:
//   - repeats=false emits a single occurrence at StartDate.
//   - repeats=true with an empty DaysOfWeek walks from StartDate in steps of
//     1 day (daily) or 7 days (weekly, pinning the start date's weekday).
//   - repeats=true with a DaysOfWeek filter emits every date in range whose
//     weekday is in the set, for both frequencies: "weekly on mon,wed" means
//     each Monday and Wednesday, a daily step combined with a filter simply
//     thins the daily sequence to the same dates.
//   - recurrenceEnds=onDate clamps the walk to RecurrenceEndDate; afterN
//     stops once RecurrenceCount occurrences were emitted. When both bounds
//     could apply, whichever the walk reaches first wins.
func Expand(p Params) ([]Occurrence, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	start := dateOnly(p.StartDate)
	end := dateOnly(p.EndDate)

	// Resolve the effective end of iteration.
	if p.RecurrenceEnds == domain.RecurrenceEndsOnDate {
		end = dateOnly(*p.RecurrenceEndDate)
	}

	if !p.Repeats {
		if start.After(end) {
			return []Occurrence{}, nil
		}
		return []Occurrence{{Date: start, StartTime: p.StartTime, EndTime: p.EndTime}}, nil
	}

	allowed := make(map[time.Weekday]struct{}, len(p.DaysOfWeek))
	for _, d := range p.DaysOfWeek {
		allowed[d.ToTimeWeekday()] = struct{}{}
	}

	// A weekday filter forces a daily walk so every selected weekday is
	// visited; an unfiltered weekly program repeats on its start weekday.
	step := 1
	if p.Frequency == domain.FrequencyWeekly && len(allowed) == 0 {
		step = 7
	}

	occurrences := make([]Occurrence, 0)
	for current := start; !current.After(end); current = current.AddDate(0, 0, step) {
		if len(allowed) > 0 {
			if _, ok := allowed[current.Weekday()]; !ok {
				continue
			}
		}

		occurrences = append(occurrences, Occurrence{
			Date:      current,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
		})

		if p.RecurrenceEnds == domain.RecurrenceEndsAfterN && len(occurrences) >= *p.RecurrenceCount {
			break
		}
	}

	return occurrences, nil
}

// validate rejects malformed recurrence input before any expansion runs.
func validate(p Params) error {
	if p.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if p.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}
	if dateOnly(p.StartDate).After(dateOnly(p.EndDate)) {
		return fmt.Errorf("%w: startDate is after endDate", ErrInvalidInput)
	}

	if p.StartTime.IsZero() || p.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := p.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := p.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !p.EndTime.IsAfter(p.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if p.Repeats {
		if p.Frequency != domain.FrequencyDaily && p.Frequency != domain.FrequencyWeekly {
			return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, p.Frequency)
		}
	}

	switch p.RecurrenceEnds {
	case domain.RecurrenceEndsNever, "":
		// endDate bounds the walk
	case domain.RecurrenceEndsOnDate:
		if p.RecurrenceEndDate == nil || p.RecurrenceEndDate.IsZero() {
			return fmt.Errorf("%w: recurrenceEndDate is required when recurrence ends on a date", ErrInvalidInput)
		}
	case domain.RecurrenceEndsAfterN:
		if p.RecurrenceCount == nil || *p.RecurrenceCount <= 0 {
			return fmt.Errorf("%w: recurrenceCount must be positive", ErrInvalidInput)
		}
		if *p.RecurrenceCount > domain.MaxRecurrenceCount {
			return fmt.Errorf("%w: recurrenceCount exceeds %d", ErrInvalidInput, domain.MaxRecurrenceCount)
		}
	default:
		return fmt.Errorf("%w: unknown recurrenceEnds %q", ErrInvalidInput, p.RecurrenceEnds)
	}

	return nil
}

// dateOnly strips the clock portion, keeping the calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
