package domain

import (
	"time"

	"github.com/heyfarai/simplyteams/pkg/types"
)

// Sport represents the sport a facility is used for.
type Sport string

const (
	SportBasketball Sport = "basketball"
	SportPickleball Sport = "pickleball"
	SportSoccer     Sport = "soccer"
	SportTennis     Sport = "tennis"
	SportVolleyball Sport = "volleyball"
)

// FacilityType represents the physical kind of a bookable facility.
type FacilityType string

const (
	FacilityFullCourt FacilityType = "full_court"
	FacilityHalfCourt FacilityType = "half_court"
	FacilityRim       FacilityType = "rim"
	FacilityCourt     FacilityType = "court"
	FacilityPitch     FacilityType = "pitch"
	FacilityField     FacilityType = "field"
)

// Facility represents a bookable physical resource (court, pitch, field).
// Booking policy lives here: duration bounds, the overlap override and
// optional operating hours that win over the global defaults.
type Facility struct {
	ID           int64
	Name         string
	Sport        Sport
	FacilityType FacilityType

	// Bookable controls whether customers can rent this facility at all.
	Bookable bool

	// AllowClashes disables all conflict checking for this facility
	// (admin override for facilities that physically share space).
	AllowClashes bool

	MinBookingDurationMinutes int
	MaxBookingDurationMinutes int

	// OpenTime/CloseTime override the global operating hours when set.
	OpenTime  *types.TimeString
	CloseTime *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OperatingHours returns the effective open/close window for the facility,
// falling back to the provided global defaults.
func (f *Facility) OperatingHours(defaultOpen, defaultClose types.TimeString) (types.TimeString, types.TimeString) {
	open := defaultOpen
	if f.OpenTime != nil && !f.OpenTime.IsZero() {
		open = *f.OpenTime
	}
	close := defaultClose
	if f.CloseTime != nil && !f.CloseTime.IsZero() {
		close = *f.CloseTime
	}
	return open, close
}

// DurationWithinBounds reports whether a booking of the given length
// satisfies the facility's duration policy.
func (f *Facility) DurationWithinBounds(durationMinutes int) bool {
	if f.MinBookingDurationMinutes > 0 && durationMinutes < f.MinBookingDurationMinutes {
		return false
	}
	if f.MaxBookingDurationMinutes > 0 && durationMinutes > f.MaxBookingDurationMinutes {
		return false
	}
	return true
}
