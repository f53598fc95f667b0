package domain

// Default facility policy values, applied when a facility record leaves a
// field unset.
const (
	DefaultMinBookingDurationMinutes = 30
	DefaultMaxBookingDurationMinutes = 60
	DefaultOpenTime                  = "08:00"
	DefaultCloseTime                 = "22:00"
	DefaultHoldMinutes               = 15
)

// Business validation constants.
const (
	MinBookingDurationMinutes = 5
	MaxBookingDurationMinutes = 480 // 8 hours
	MaxProgramNameLength      = 200
	MaxRecurrenceCount        = 366 // at most a year of daily occurrences
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CountedStatuses lists rental statuses that can occupy a facility.
// A pending rental only counts while its hold is still live; see
// FacilityRental.IsCounted.
var CountedStatuses = []RentalStatus{
	StatusPending,
	StatusConfirmed,
}

// AllWeekdays lists the recurrence filter values in week order.
var AllWeekdays = []Weekday{
	WeekdayMon,
	WeekdayTue,
	WeekdayWed,
	WeekdayThu,
	WeekdayFri,
	WeekdaySat,
	WeekdaySun,
}
