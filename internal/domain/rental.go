package domain

import "time"

// RentalStatus represents the lifecycle status of a facility rental.
type RentalStatus string

const (
	StatusPending   RentalStatus = "pending"
	StatusConfirmed RentalStatus = "confirmed"
	StatusCancelled RentalStatus = "cancelled"
	StatusExpired   RentalStatus = "expired"
)

// FacilityRental represents an ad-hoc facility reservation.
// A pending rental with HoldExpiresAt set is a soft hold: it occupies the
// facility only until the hold lapses.
type FacilityRental struct {
	ID         int64
	Reference  string // public reference code (UUID)
	FacilityID int64
	CustomerID int64

	StartTime time.Time
	EndTime   time.Time

	Status        RentalStatus
	HoldExpiresAt *time.Time

	// Denormalized customer data for history.
	CustomerName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCounted reports whether the rental occupies the facility for conflict
// purposes at the given instant. Hold expiry is evaluated live rather than
// trusting the stored status: a lapsed hold stops counting even before any
// sweep transitions it to expired.
func (r *FacilityRental) IsCounted(now time.Time) bool {
	switch r.Status {
	case StatusConfirmed:
		return true
	case StatusPending:
		if r.HoldExpiresAt == nil {
			return true
		}
		return r.HoldExpiresAt.After(now)
	default:
		return false
	}
}

// CanBeCancelled reports whether the rental can transition to cancelled.
func (r *FacilityRental) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeConfirmed reports whether the rental can transition to confirmed.
func (r *FacilityRental) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// DurationMinutes returns the rental length in whole minutes.
func (r *FacilityRental) DurationMinutes() int {
	return int(r.EndTime.Sub(r.StartTime) / time.Minute)
}
