package domain

import (
	"time"

	"github.com/heyfarai/simplyteams/pkg/types"
)

// ProgramType represents the kind of activity program.
type ProgramType string

const (
	ProgramCamp     ProgramType = "camp"
	ProgramClinic   ProgramType = "clinic"
	ProgramTraining ProgramType = "training"
	ProgramOpenGym  ProgramType = "open_gym"
)

// Frequency represents how often a recurring program repeats.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// RecurrenceEnds represents the termination mode of a recurrence.
type RecurrenceEnds string

const (
	// RecurrenceEndsNever means the recurrence runs until the program's end date.
	RecurrenceEndsNever RecurrenceEnds = "never"
	// RecurrenceEndsOnDate clamps the recurrence to RecurrenceEndDate.
	RecurrenceEndsOnDate RecurrenceEnds = "onDate"
	// RecurrenceEndsAfterN stops after RecurrenceCount occurrences.
	RecurrenceEndsAfterN RecurrenceEnds = "afterN"
)

// Weekday is a lowercase three-letter weekday used in recurrence filters.
type Weekday string

const (
	WeekdayMon Weekday = "mon"
	WeekdayTue Weekday = "tue"
	WeekdayWed Weekday = "wed"
	WeekdayThu Weekday = "thu"
	WeekdayFri Weekday = "fri"
	WeekdaySat Weekday = "sat"
	WeekdaySun Weekday = "sun"
)

// ToTimeWeekday maps a domain weekday to time.Weekday.
// Unknown values map to -1 so they never match a real date.
func (w Weekday) ToTimeWeekday() time.Weekday {
	switch w {
	case WeekdayMon:
		return time.Monday
	case WeekdayTue:
		return time.Tuesday
	case WeekdayWed:
		return time.Wednesday
	case WeekdayThu:
		return time.Thursday
	case WeekdayFri:
		return time.Friday
	case WeekdaySat:
		return time.Saturday
	case WeekdaySun:
		return time.Sunday
	default:
		return time.Weekday(-1)
	}
}

// Program represents a recurring activity program (camp, clinic, training,
// open gym). The recurrence fields drive session materialization.
type Program struct {
	ID          int64
	Name        string
	Description string
	Type        ProgramType

	// StartDate..EndDate is the calendar range the recurrence is confined to.
	StartDate time.Time
	EndDate   time.Time

	// StartTime/EndTime carry the time of day shared by every session.
	StartTime types.TimeString
	EndTime   types.TimeString

	Repeats           bool
	Frequency         Frequency
	DaysOfWeek        []Weekday
	RecurrenceEnds    RecurrenceEnds
	RecurrenceEndDate *time.Time
	RecurrenceCount   *int

	// CustomSessions disables automatic session generation: sessions are
	// managed by an operator. Switching custom -> generated deletes every
	// operator-managed session before regenerating.
	CustomSessions bool

	FacilityID *int64

	Capacity    int
	Price       float64
	AllowDropIn bool
	DropInPrice *float64
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGenerated reports whether the program's sessions are produced by the
// materializer rather than managed by an operator.
func (p *Program) IsGenerated() bool {
	return !p.CustomSessions
}
