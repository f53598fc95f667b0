package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/ptr"
	"github.com/heyfarai/simplyteams/pkg/types"
)

type stubFacilityRepo struct {
	facility *domain.Facility
	err      error
}

func (s *stubFacilityRepo) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.facility, nil
}

type stubRentalRepo struct {
	rentals []*domain.FacilityRental
}

func (s *stubRentalRepo) GetCountedByFacilityAndRange(ctx context.Context, facilityID int64, start, end time.Time, now time.Time) ([]*domain.FacilityRental, error) {
	counted := make([]*domain.FacilityRental, 0)
	for _, r := range s.rentals {
		if r.IsCounted(now) && r.StartTime.Before(end) && start.Before(r.EndTime) {
			counted = append(counted, r)
		}
	}
	return counted, nil
}

type stubSessionRepo struct {
	sessions []*domain.Session
}

func (s *stubSessionRepo) GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time) ([]*domain.Session, error) {
	return s.sessions, nil
}

type stubTxManager struct{}

func (s *stubTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(facility *domain.Facility, rentals *stubRentalRepo, sessions *stubSessionRepo) *UseCase {
	uc := NewUseCase(
		&stubFacilityRepo{facility: facility},
		rentals,
		sessions,
		&stubTxManager{},
		Policy{
			DefaultOpenTime:  types.TimeString("08:00"),
			DefaultCloseTime: types.TimeString("22:00"),
		},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}
	return uc
}

func testFacility() *domain.Facility {
	return &domain.Facility{
		ID:                        1,
		Bookable:                  true,
		MinBookingDurationMinutes: 30,
		MaxBookingDurationMinutes: 120,
	}
}

func TestExecute_AvailableWhenFree(t *testing.T) {
	uc := newUseCase(testFacility(), &stubRentalRepo{}, &stubSessionRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Nil(t, resp.Reason)
}

func TestExecute_ConflictReported(t *testing.T) {
	rentals := &stubRentalRepo{
		rentals: []*domain.FacilityRental{
			{
				ID:         9,
				FacilityID: 1,
				StartTime:  time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC),
				EndTime:    time.Date(2024, 6, 10, 11, 30, 0, 0, time.UTC),
				Status:     domain.StatusConfirmed,
			},
		},
	}
	uc := newUseCase(testFacility(), rentals, &stubSessionRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, ReasonConflict, *resp.Reason)
	require.NotNil(t, resp.ConflictKind)
	assert.Equal(t, "rental", *resp.ConflictKind)
	require.NotNil(t, resp.ConflictID)
	assert.Equal(t, int64(9), *resp.ConflictID)
}

func TestExecute_SessionConflictReported(t *testing.T) {
	sessions := &stubSessionRepo{
		sessions: []*domain.Session{
			{
				ID:         4,
				ProgramID:  2,
				Date:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				StartTime:  types.TimeString("10:00"),
				EndTime:    types.TimeString("12:00"),
				FacilityID: ptr.Ptr(int64(1)),
			},
		},
	}
	uc := newUseCase(testFacility(), &stubRentalRepo{}, sessions)

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, "session", *resp.ConflictKind)
}

func TestExecute_NotBookable(t *testing.T) {
	facility := testFacility()
	facility.Bookable = false
	uc := newUseCase(facility, &stubRentalRepo{}, &stubSessionRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonNotBookable, *resp.Reason)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	uc := newUseCase(testFacility(), &stubRentalRepo{}, &stubSessionRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonOutsideOperatingHours, *resp.Reason)
}

func TestExecute_DurationOutOfBounds(t *testing.T) {
	uc := newUseCase(testFacility(), &stubRentalRepo{}, &stubSessionRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 10, 15, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonDurationOutOfBounds, *resp.Reason)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(testFacility(), &stubRentalRepo{}, &stubSessionRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityID: 0,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}
