package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/heyfarai/simplyteams/internal/domain"
	facilityRepo "github.com/heyfarai/simplyteams/internal/infra/storage/facility"
	"github.com/heyfarai/simplyteams/internal/service/facilities/models"
)

// Service сервис для работы с площадками
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Create создает новую площадку
func (s *Service) Create(ctx context.Context, req *models.CreateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Create: creating facility name=%q, sport=%s", req.Name, req.Sport)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	facility, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid operating hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateOperatingHoursOrder(facility); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}

	created, err := s.facilityRepo.Create(ctx, facility)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created facility id=%d", created.ID)
	return models.FromDomainFacility(created), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FacilityResponse, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// List получает список площадок, опционально только доступных для бронирования
func (s *Service) List(ctx context.Context, bookableOnly bool) (*models.FacilityListResponse, error) {
	facilities, err := s.facilityRepo.List(ctx, bookableOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d facilities (bookableOnly=%t)", len(facilities), bookableOnly)
	return models.FromDomainFacilityList(facilities), nil
}

// Update обновляет площадку
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Update: updating facility id=%d", id)

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := req.ApplyTo(facility); err != nil {
		s.logger.Warn("Update: invalid request for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateFacility(facility); err != nil {
		s.logger.Warn("Update: validation failed for facility id=%d: %v", id, err)
		return nil, err
	}

	if err := s.facilityRepo.Update(ctx, facility); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated facility id=%d", id)
	return models.FromDomainFacility(facility), nil
}

// validateCreateRequest валидирует запрос на создание площадки
func validateCreateRequest(req *models.CreateFacilityRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Sport == "" {
		return fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if req.FacilityType == "" {
		return fmt.Errorf("%w: facilityType is required", ErrInvalidInput)
	}
	if req.MinBookingDurationMinutes < 0 || req.MaxBookingDurationMinutes < 0 {
		return fmt.Errorf("%w: duration bounds must not be negative", ErrInvalidInput)
	}
	return nil
}

// validateFacility валидирует собранную domain модель
func validateFacility(facility *domain.Facility) error {
	if facility.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if facility.MinBookingDurationMinutes < 0 || facility.MaxBookingDurationMinutes < 0 {
		return fmt.Errorf("%w: duration bounds must not be negative", ErrInvalidInput)
	}
	if facility.MinBookingDurationMinutes > 0 && facility.MaxBookingDurationMinutes > 0 &&
		facility.MinBookingDurationMinutes > facility.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: minBookingDurationMinutes exceeds maxBookingDurationMinutes", ErrInvalidInput)
	}
	return validateOperatingHoursOrder(facility)
}

// validateOperatingHoursOrder проверяет, что закрытие позже открытия
func validateOperatingHoursOrder(facility *domain.Facility) error {
	if facility.OpenTime != nil && facility.CloseTime != nil &&
		!facility.CloseTime.IsAfter(*facility.OpenTime) {
		return fmt.Errorf("%w: closeTime must be after openTime", ErrInvalidInput)
	}
	return nil
}
