package rentals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyfarai/simplyteams/internal/domain"
	rentalRepo "github.com/heyfarai/simplyteams/internal/infra/storage/rental"
	"github.com/heyfarai/simplyteams/internal/service/rentals/models"
)

type stubRentalRepo struct {
	rental        *domain.FacilityRental
	getErr        error
	updatedStatus *domain.RentalStatus
}

func (s *stubRentalRepo) GetByID(ctx context.Context, id int64) (*domain.FacilityRental, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	copied := *s.rental
	return &copied, nil
}

func (s *stubRentalRepo) GetByCustomerID(ctx context.Context, customerID int64, status *domain.RentalStatus) ([]*domain.FacilityRental, error) {
	return []*domain.FacilityRental{s.rental}, nil
}

func (s *stubRentalRepo) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error {
	s.updatedStatus = &status
	return nil
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

var testNow = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func pendingRental(holdExpiresAt *time.Time) *domain.FacilityRental {
	return &domain.FacilityRental{
		ID:            1,
		Reference:     "ref-1",
		FacilityID:    2,
		CustomerID:    42,
		StartTime:     time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
		Status:        domain.StatusPending,
		HoldExpiresAt: holdExpiresAt,
	}
}

func newService(repo *stubRentalRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func TestConfirm_PendingWithLiveHold(t *testing.T) {
	live := testNow.Add(10 * time.Minute)
	repo := &stubRentalRepo{rental: pendingRental(&live)}
	svc := newService(repo)

	resp, err := svc.Confirm(context.Background(), 1, 42)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
}

func TestConfirm_ExpiredHoldRejected(t *testing.T) {
	lapsed := testNow.Add(-time.Minute)
	repo := &stubRentalRepo{rental: pendingRental(&lapsed)}
	svc := newService(repo)

	_, err := svc.Confirm(context.Background(), 1, 42)

	require.ErrorIs(t, err, ErrHoldExpired)
	assert.Nil(t, repo.updatedStatus)
}

func TestConfirm_AlreadyConfirmedRejected(t *testing.T) {
	rental := pendingRental(nil)
	rental.Status = domain.StatusConfirmed
	repo := &stubRentalRepo{rental: rental}
	svc := newService(repo)

	_, err := svc.Confirm(context.Background(), 1, 42)

	require.ErrorIs(t, err, ErrCannotConfirm)
}

func TestConfirm_AccessDenied(t *testing.T) {
	repo := &stubRentalRepo{rental: pendingRental(nil)}
	svc := newService(repo)

	_, err := svc.Confirm(context.Background(), 1, 99)

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_PendingRental(t *testing.T) {
	repo := &stubRentalRepo{rental: pendingRental(nil)}
	svc := newService(repo)

	resp, err := svc.Cancel(context.Background(), 1, 42)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestCancel_ConfirmedRental(t *testing.T) {
	rental := pendingRental(nil)
	rental.Status = domain.StatusConfirmed
	repo := &stubRentalRepo{rental: rental}
	svc := newService(repo)

	_, err := svc.Cancel(context.Background(), 1, 42)

	require.NoError(t, err)
}

func TestCancel_ExpiredRentalRejected(t *testing.T) {
	rental := pendingRental(nil)
	rental.Status = domain.StatusExpired
	repo := &stubRentalRepo{rental: rental}
	svc := newService(repo)

	_, err := svc.Cancel(context.Background(), 1, 42)

	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &stubRentalRepo{getErr: rentalRepo.ErrRentalNotFound}
	svc := newService(repo)

	_, err := svc.GetByID(context.Background(), 1, 42)

	require.ErrorIs(t, err, ErrRentalNotFound)
}

func TestGetCustomerRentals_InvalidStatus(t *testing.T) {
	repo := &stubRentalRepo{rental: pendingRental(nil)}
	svc := newService(repo)

	status := "bogus"
	_, err := svc.GetCustomerRentals(context.Background(), &models.GetCustomerRentalsRequest{
		CustomerID: 42,
		Status:     &status,
	})

	require.ErrorIs(t, err, ErrInvalidStatus)
}
