package rentals

import (
	"context"
	"errors"
	"fmt"

	"github.com/heyfarai/simplyteams/internal/domain"
	rentalRepo "github.com/heyfarai/simplyteams/internal/infra/storage/rental"
	"github.com/heyfarai/simplyteams/internal/service/rentals/models"
)

// Service сервис для чтения аренд и переходов статусов.
// Создание аренды идет через usecase слой, где работает скан конфликтов.
type Service struct {
	rentalRepo   RentalRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аренд
func NewService(rentalRepo RentalRepository, logger Logger) *Service {
	return &Service{
		rentalRepo:   rentalRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает аренду по ID
// Пользователь может видеть только свою аренду
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.RentalResponse, error) {
	rental, err := s.getRental(ctx, id)
	if err != nil {
		return nil, err
	}

	if rental.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to rental id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainRental(rental), nil
}

// GetCustomerRentals получает историю аренд пользователя
// Опционально фильтрует по статусу
func (s *Service) GetCustomerRentals(ctx context.Context, req *models.GetCustomerRentalsRequest) (*models.RentalListResponse, error) {
	var domainStatus *domain.RentalStatus
	if req.Status != nil {
		status, err := models.ToDomainRentalStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerRentals: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, ErrInvalidStatus
		}
		domainStatus = &status
	}

	rentals, err := s.rentalRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerRentals: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerRentals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerRentals: fetched %d rentals for customer=%d", len(rentals), req.CustomerID)
	return models.FromDomainRentalList(rentals), nil
}

// Confirm подтверждает pending аренду.
// Подтвердить можно только пока холд еще жив.
func (s *Service) Confirm(ctx context.Context, id int64, customerID int64) (*models.RentalResponse, error) {
	s.logger.Info("Confirm: confirming rental id=%d by customer=%d", id, customerID)

	rental, err := s.getRental(ctx, id)
	if err != nil {
		return nil, err
	}

	if rental.CustomerID != customerID {
		s.logger.Warn("Confirm: access denied for customer=%d to rental id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	if !rental.CanBeConfirmed() {
		s.logger.Warn("Confirm: rental id=%d has status %s", id, rental.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotConfirm, rental.Status)
	}

	now := s.timeProvider.Now()
	if rental.HoldExpiresAt != nil && !rental.HoldExpiresAt.After(now) {
		s.logger.Warn("Confirm: rental id=%d hold expired at %s", id, rental.HoldExpiresAt)
		return nil, ErrHoldExpired
	}

	if err := s.rentalRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		s.logger.Error("Confirm: failed to update rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	rental.Status = domain.StatusConfirmed
	s.logger.Info("Confirm: successfully confirmed rental id=%d", id)
	return models.FromDomainRental(rental), nil
}

// Cancel отменяет pending или confirmed аренду
func (s *Service) Cancel(ctx context.Context, id int64, customerID int64) (*models.RentalResponse, error) {
	s.logger.Info("Cancel: cancelling rental id=%d by customer=%d", id, customerID)

	rental, err := s.getRental(ctx, id)
	if err != nil {
		return nil, err
	}

	if rental.CustomerID != customerID {
		s.logger.Warn("Cancel: access denied for customer=%d to rental id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	if !rental.CanBeCancelled() {
		s.logger.Warn("Cancel: rental id=%d has status %s", id, rental.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, rental.Status)
	}

	if err := s.rentalRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to update rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	rental.Status = domain.StatusCancelled
	s.logger.Info("Cancel: successfully cancelled rental id=%d", id)
	return models.FromDomainRental(rental), nil
}

func (s *Service) getRental(ctx context.Context, id int64) (*domain.FacilityRental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("getRental: rental id=%d not found", id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("getRental: repository error for rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return rental, nil
}
