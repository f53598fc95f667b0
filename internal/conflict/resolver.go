package conflict

import (
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// Kind describes which record type a candidate booking collided with.
type Kind string

const (
	// KindRental indicates an overlap with an existing facility rental.
	KindRental Kind = "rental"
	// KindSession indicates an overlap with a materialized program session.
	KindSession Kind = "session"
)

// Clash identifies the record that blocked a candidate booking.
type Clash struct {
	Kind Kind
	ID   int64
}

// Candidate is the interval a caller wants to reserve on a facility.
type Candidate struct {
	Start time.Time
	End   time.Time
}

// Date returns the candidate's calendar date, used for session comparison.
func (c Candidate) Date() time.Time {
	y, m, d := c.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Start.Location())
}

// Check decides whether the candidate interval may be booked on the facility
// given the already-fetched rentals and sessions for that facility.
//
// Rules:
//   - allowClashes=true accepts unconditionally, nothing is scanned.
//   - only counted rentals occupy the facility: confirmed, or pending with a
//     hold still live at now (expiry is evaluated here, not read from status).
//   - overlap is half-open interval intersection: [a,b) and [c,d) overlap
//     iff a < d && c < b, so touching intervals never conflict.
//   - sessions are compared on the candidate's calendar date by time of day.
//
// Returns nil when the candidate is accepted, otherwise the first clash found.
func Check(
	facility *domain.Facility,
	candidate Candidate,
	rentals []*domain.FacilityRental,
	sessions []*domain.Session,
	now time.Time,
) *Clash {
	if facility.AllowClashes {
		return nil
	}

	for _, rental := range rentals {
		if !rental.IsCounted(now) {
			continue
		}
		if rental.StartTime.Before(candidate.End) && candidate.Start.Before(rental.EndTime) {
			return &Clash{Kind: KindRental, ID: rental.ID}
		}
	}

	candidateStart := types.NewTimeString(candidate.Start)
	candidateEnd := types.NewTimeString(candidate.End)

	for _, session := range sessions {
		if !session.SameDate(candidate.Date()) {
			continue
		}
		if session.StartTime.IsBefore(candidateEnd) && candidateStart.IsBefore(session.EndTime) {
			return &Clash{Kind: KindSession, ID: session.ID}
		}
	}

	return nil
}
