package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/heyfarai/simplyteams/internal/conflict"
	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/ptr"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// Policy глобальная политика бронирования из конфигурации
type Policy struct {
	DefaultOpenTime  types.TimeString
	DefaultCloseTime types.TimeString
}

// UseCase use case для проверки доступности площадки.
// Повторяет проверки создания аренды, но только читает: результат
// консультативный и может устареть к моменту фактического бронирования.
type UseCase struct {
	facilityRepo FacilityRepository
	rentalRepo   RentalRepository
	sessionRepo  SessionRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	policy       Policy
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	facilityRepo FacilityRepository,
	rentalRepo RentalRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilityRepo: facilityRepo,
		rentalRepo:   rentalRepo,
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		policy:       policy,
		logger:       logger,
	}
}

// Execute выполняет проверку доступности площадки на интервал
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем площадку
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		uc.logger.Warn("CheckAvailability: facility id=%d not found: %v", req.FacilityID, err)
		return nil, ErrFacilityNotFound
	}

	// 4. Проверки политики без обращения к данным
	if !facility.Bookable {
		return unavailable(ReasonNotBookable), nil
	}

	if !withinOperatingHours(facility, req.StartTime, req.EndTime, uc.policy.DefaultOpenTime, uc.policy.DefaultCloseTime) {
		return unavailable(ReasonOutsideOperatingHours), nil
	}

	durationMinutes := int(req.EndTime.Sub(req.StartTime) / time.Minute)
	if !facility.DurationWithinBounds(durationMinutes) {
		return unavailable(ReasonDurationOutOfBounds), nil
	}

	candidate := conflict.Candidate{Start: req.StartTime, End: req.EndTime}
	var clash *conflict.Clash

	// 5. Читаем занятость в read-only транзакции для консистентного снимка
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		rentals, err := uc.rentalRepo.GetCountedByFacilityAndRange(txCtx,
			req.FacilityID, req.StartTime, req.EndTime, now)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get rentals: %v", err)
			return fmt.Errorf("%w: failed to get rentals: %v", ErrInternal, err)
		}

		sessions, err := uc.sessionRepo.GetByFacilityAndDate(txCtx, req.FacilityID, candidate.Date())
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get sessions: %v", err)
			return fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
		}

		clash = conflict.Check(facility, candidate, rentals, sessions, now)
		return nil
	})

	if err != nil {
		return nil, err
	}

	if clash != nil {
		resp := unavailable(ReasonConflict)
		resp.ConflictKind = ptr.Ptr(string(clash.Kind))
		resp.ConflictID = ptr.Ptr(clash.ID)
		return resp, nil
	}

	return &Response{Available: true}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	y1, m1, d1 := req.StartTime.Date()
	y2, m2, d2 := req.EndTime.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return fmt.Errorf("%w: interval must not cross midnight", ErrInvalidInput)
	}

	return nil
}

// withinOperatingHours проверяет интервал против часов работы площадки
func withinOperatingHours(facility *domain.Facility, start, end time.Time, defaultOpen, defaultClose types.TimeString) bool {
	open, close := facility.OperatingHours(defaultOpen, defaultClose)
	startTS := types.NewTimeString(start)
	endTS := types.NewTimeString(end)
	return !startTS.IsBefore(open) && !endTS.IsAfter(close)
}

func unavailable(reason Reason) *Response {
	return &Response{Available: false, Reason: &reason}
}
