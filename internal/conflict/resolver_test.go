package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/ptr"
)

var now = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2024, time.June, 10, hour, min, 0, 0, time.UTC)
}

func facility() *domain.Facility {
	return &domain.Facility{
		ID:                        1,
		Name:                      "Court A",
		AllowClashes:              false,
		MinBookingDurationMinutes: 30,
		MaxBookingDurationMinutes: 120,
	}
}

func confirmedRental(id int64, start, end time.Time) *domain.FacilityRental {
	return &domain.FacilityRental{
		ID:         id,
		FacilityID: 1,
		StartTime:  start,
		EndTime:    end,
		Status:     domain.StatusConfirmed,
	}
}

func TestCheck_OverlapRejected(t *testing.T) {
	rentals := []*domain.FacilityRental{confirmedRental(11, at(10, 0), at(11, 0))}
	candidate := Candidate{Start: at(10, 30), End: at(11, 30)}

	clash := Check(facility(), candidate, rentals, nil, now)

	require.NotNil(t, clash)
	assert.Equal(t, KindRental, clash.Kind)
	assert.Equal(t, int64(11), clash.ID)
}

func TestCheck_TouchingIsNotOverlap(t *testing.T) {
	rentals := []*domain.FacilityRental{confirmedRental(11, at(11, 0), at(12, 0))}
	candidate := Candidate{Start: at(10, 0), End: at(11, 0)}

	assert.Nil(t, Check(facility(), candidate, rentals, nil, now))
}

func TestCheck_AllowClashesBypassesScan(t *testing.T) {
	f := facility()
	f.AllowClashes = true

	rentals := []*domain.FacilityRental{confirmedRental(11, at(10, 0), at(11, 0))}
	candidate := Candidate{Start: at(10, 0), End: at(11, 0)}

	assert.Nil(t, Check(f, candidate, rentals, nil, now))
}

func TestCheck_ExpiredHoldDoesNotBlock(t *testing.T) {
	hold := confirmedRental(11, at(10, 0), at(11, 0))
	hold.Status = domain.StatusPending
	hold.HoldExpiresAt = ptr.Ptr(now.Add(-5 * time.Minute))

	candidate := Candidate{Start: at(10, 0), End: at(11, 0)}

	assert.Nil(t, Check(facility(), candidate, []*domain.FacilityRental{hold}, nil, now))
}

func TestCheck_LiveHoldBlocks(t *testing.T) {
	hold := confirmedRental(11, at(10, 0), at(11, 0))
	hold.Status = domain.StatusPending
	hold.HoldExpiresAt = ptr.Ptr(now.Add(15 * time.Minute))

	candidate := Candidate{Start: at(10, 30), End: at(11, 30)}

	clash := Check(facility(), candidate, []*domain.FacilityRental{hold}, nil, now)
	require.NotNil(t, clash)
	assert.Equal(t, KindRental, clash.Kind)
}

func TestCheck_PendingWithoutHoldBlocks(t *testing.T) {
	pending := confirmedRental(11, at(10, 0), at(11, 0))
	pending.Status = domain.StatusPending
	pending.HoldExpiresAt = nil

	candidate := Candidate{Start: at(10, 30), End: at(11, 30)}

	require.NotNil(t, Check(facility(), candidate, []*domain.FacilityRental{pending}, nil, now))
}

func TestCheck_CancelledAndExpiredDoNotBlock(t *testing.T) {
	cancelled := confirmedRental(11, at(10, 0), at(11, 0))
	cancelled.Status = domain.StatusCancelled
	expired := confirmedRental(12, at(10, 0), at(11, 0))
	expired.Status = domain.StatusExpired

	candidate := Candidate{Start: at(10, 0), End: at(11, 0)}

	assert.Nil(t, Check(facility(), candidate, []*domain.FacilityRental{cancelled, expired}, nil, now))
}

func TestCheck_SessionClash(t *testing.T) {
	sessions := []*domain.Session{{
		ID:        21,
		ProgramID: 5,
		Date:      time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
	}}

	candidate := Candidate{Start: at(11, 0), End: at(12, 0)}

	clash := Check(facility(), candidate, nil, sessions, now)
	require.NotNil(t, clash)
	assert.Equal(t, KindSession, clash.Kind)
	assert.Equal(t, int64(21), clash.ID)
}

func TestCheck_SessionOnOtherDateIgnored(t *testing.T) {
	sessions := []*domain.Session{{
		ID:        21,
		Date:      time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
	}}

	candidate := Candidate{Start: at(10, 0), End: at(11, 0)}

	assert.Nil(t, Check(facility(), candidate, nil, sessions, now))
}

func TestCheck_SessionTouchingIsNotOverlap(t *testing.T) {
	sessions := []*domain.Session{{
		ID:        21,
		Date:      time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "11:00",
		EndTime:   "12:00",
	}}

	candidate := Candidate{Start: at(10, 0), End: at(11, 0)}

	assert.Nil(t, Check(facility(), candidate, nil, sessions, now))
}

// After any sequence of accepted bookings on a facility with
// allowClashes=false, no two counted intervals overlap: every accepted
// candidate is immediately added to the rental set the next check scans.
func TestCheck_NonOverlapInvariantUnderSequentialAdmission(t *testing.T) {
	f := facility()
	var rentals []*domain.FacilityRental

	candidates := []Candidate{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(10, 0), End: at(11, 0)}, // touches, accepted
		{Start: at(10, 30), End: at(11, 30)}, // overlaps, rejected
		{Start: at(11, 0), End: at(12, 0)}, // touches, accepted
		{Start: at(9, 30), End: at(10, 30)}, // overlaps two, rejected
	}

	var nextID int64 = 1
	accepted := 0
	for _, c := range candidates {
		if Check(f, c, rentals, nil, now) == nil {
			rentals = append(rentals, confirmedRental(nextID, c.Start, c.End))
			nextID++
			accepted++
		}
	}

	assert.Equal(t, 3, accepted)
	for i := range rentals {
		for j := i + 1; j < len(rentals); j++ {
			a, b := rentals[i], rentals[j]
			overlap := a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime)
			assert.False(t, overlap, "rentals %d and %d overlap", a.ID, b.ID)
		}
	}
}
