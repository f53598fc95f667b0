package create_rental

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/internal/integrations/identityservice"
	"github.com/heyfarai/simplyteams/pkg/metrics"
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
	created *domain.FacilityRental
	nextID  int64
}

func (s *stubRentalRepo) Create(ctx context.Context, rental *domain.FacilityRental) (*domain.FacilityRental, error) {
	s.nextID++
	rental.ID = s.nextID
	rental.CreatedAt = time.Now()
	rental.UpdatedAt = rental.CreatedAt
	s.created = rental
	return rental, nil
}

func (s *stubRentalRepo) GetCountedByFacilityAndRange(ctx context.Context, facilityID int64, start, end time.Time, now time.Time) ([]*domain.FacilityRental, error) {
	counted := make([]*domain.FacilityRental, 0)
	for _, r := range s.rentals {
		if r.FacilityID == facilityID && r.IsCounted(now) &&
			r.StartTime.Before(end) && start.Before(r.EndTime) {
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

type stubIdentityClient struct {
	customer *identityservice.Customer
	err      error
}

func (s *stubIdentityClient) GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*identityservice.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.customer, nil
}

type stubTxManager struct{}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) ObserveBooking(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func defaultPolicy() Policy {
	return Policy{
		DefaultOpenTime:  types.TimeString("08:00"),
		DefaultCloseTime: types.TimeString("22:00"),
		HoldMinutes:      15,
	}
}

func bookableFacility() *domain.Facility {
	return &domain.Facility{
		ID:                        1,
		Name:                      "Court A",
		Sport:                     domain.SportBasketball,
		FacilityType:              domain.FacilityFullCourt,
		Bookable:                  true,
		MinBookingDurationMinutes: 30,
		MaxBookingDurationMinutes: 120,
	}
}

type fixture struct {
	uc       *UseCase
	rentals  *stubRentalRepo
	sessions *stubSessionRepo
	metrics  *recordingMetrics
	now      time.Time
}

func newFixture(t *testing.T, facility *domain.Facility) *fixture {
	t.Helper()

	rentals := &stubRentalRepo{}
	sessions := &stubSessionRepo{}
	observed := &recordingMetrics{}
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&stubFacilityRepo{facility: facility},
		rentals,
		sessions,
		&stubIdentityClient{customer: &identityservice.Customer{ID: 42, Name: "Jordan Li"}},
		&stubTxManager{},
		observed,
		defaultPolicy(),
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	return &fixture{uc: uc, rentals: rentals, sessions: sessions, metrics: observed, now: now}
}

func TestExecute_CreatesPendingRentalWithHold(t *testing.T) {
	f := newFixture(t, bookableFacility())

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.NotNil(t, resp.HoldExpiresAt)
	assert.Equal(t, f.now.Add(15*time.Minute), *resp.HoldExpiresAt)
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Jordan Li", *resp.CustomerName)
	assert.Equal(t, []string{metrics.OutcomeAccepted}, f.metrics.outcomes)
}

func TestExecute_OverlappingRentalRejected(t *testing.T) {
	f := newFixture(t, bookableFacility())
	f.rentals.rentals = []*domain.FacilityRental{
		{
			ID:         7,
			FacilityID: 1,
			StartTime:  time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 6, 10, 11, 30, 0, 0, time.UTC),
			Status:     domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrTimeConflict)
	assert.Nil(t, f.rentals.created)
	assert.Equal(t, []string{metrics.OutcomeConflict}, f.metrics.outcomes)
}

func TestExecute_TouchingRentalAccepted(t *testing.T) {
	f := newFixture(t, bookableFacility())
	f.rentals.rentals = []*domain.FacilityRental{
		{
			ID:         7,
			FacilityID: 1,
			StartTime:  time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			Status:     domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
}

func TestExecute_ExpiredHoldDoesNotBlock(t *testing.T) {
	f := newFixture(t, bookableFacility())
	lapsed := f.now.Add(-time.Minute)
	f.rentals.rentals = []*domain.FacilityRental{
		{
			ID:            7,
			FacilityID:    1,
			StartTime:     time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
			Status:        domain.StatusPending,
			HoldExpiresAt: &lapsed,
		},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_SessionConflictRejected(t *testing.T) {
	f := newFixture(t, bookableFacility())
	f.sessions.sessions = []*domain.Session{
		{
			ID:         3,
			ProgramID:  1,
			Date:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime:  types.TimeString("10:00"),
			EndTime:    types.TimeString("11:00"),
			FacilityID: ptr.Ptr(int64(1)),
		},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 30, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_AllowClashesBypassesConflicts(t *testing.T) {
	facility := bookableFacility()
	facility.AllowClashes = true
	f := newFixture(t, facility)
	f.rentals.rentals = []*domain.FacilityRental{
		{
			ID:         7,
			FacilityID: 1,
			StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
			Status:     domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
}

func TestExecute_DurationOutOfBounds(t *testing.T) {
	f := newFixture(t, bookableFacility())

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC), // 180 min, max is 120
	})

	require.ErrorIs(t, err, ErrDurationOutOfBounds)
	assert.Equal(t, []string{metrics.OutcomeDurationInvalid}, f.metrics.outcomes)
}

func TestExecute_FacilityNotBookable(t *testing.T) {
	facility := bookableFacility()
	facility.Bookable = false
	f := newFixture(t, facility)

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrFacilityNotBookable)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	f := newFixture(t, bookableFacility())

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 21, 30, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 22, 30, 0, 0, time.UTC), // closes at 22:00
	})

	require.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_FacilityHoursOverrideGlobalDefaults(t *testing.T) {
	facility := bookableFacility()
	facility.OpenTime = ptr.Ptr(types.TimeString("06:00"))
	f := newFixture(t, bookableFacility())
	late := newFixture(t, facility)

	req := &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 11, 6, 30, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 11, 7, 30, 0, 0, time.UTC),
	}

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideOperatingHours)

	_, err = late.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_StartInPastRejected(t *testing.T) {
	f := newFixture(t, bookableFacility())

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  f.now.Add(-time.Hour),
		EndTime:    f.now.Add(-30 * time.Minute),
	})

	require.ErrorIs(t, err, ErrStartInPast)
}

func TestExecute_IdentityServiceDegradedProceedsWithoutName(t *testing.T) {
	f := newFixture(t, bookableFacility())
	f.uc.identityClient = &stubIdentityClient{err: identityservice.ErrServiceDegraded}

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.CustomerName)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture(t, bookableFacility())
	f.uc.identityClient = &stubIdentityClient{err: identityservice.ErrCustomerNotFound}

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		FacilityID: 1,
		StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t, bookableFacility())

	cases := []struct {
		name string
		req  *Request
	}{
		{
			name: "zero customer",
			req: &Request{
				FacilityID: 1,
				StartTime:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
				EndTime:    time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "end before start",
			req: &Request{
				CustomerID: 42,
				FacilityID: 1,
				StartTime:  time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
				EndTime:    time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "crosses midnight",
			req: &Request{
				CustomerID: 42,
				FacilityID: 1,
				StartTime:  time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC),
				EndTime:    time.Date(2024, 6, 11, 1, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
