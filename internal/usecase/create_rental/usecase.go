package create_rental

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heyfarai/simplyteams/internal/conflict"
	"github.com/heyfarai/simplyteams/internal/domain"
	identityClient "github.com/heyfarai/simplyteams/internal/integrations/identityservice"
	"github.com/heyfarai/simplyteams/pkg/metrics"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// Policy глобальная политика бронирования из конфигурации
type Policy struct {
	DefaultOpenTime  types.TimeString
	DefaultCloseTime types.TimeString
	HoldMinutes      int
}

// HoldDuration возвращает срок жизни холда pending аренды
func (p Policy) HoldDuration() time.Duration {
	minutes := p.HoldMinutes
	if minutes <= 0 {
		minutes = domain.DefaultHoldMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// UseCase use case для создания аренды площадки
type UseCase struct {
	facilityRepo   FacilityRepository
	rentalRepo     RentalRepository
	sessionRepo    SessionRepository
	identityClient IdentityServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	metrics        BookingMetrics
	policy         Policy
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	facilityRepo FacilityRepository,
	rentalRepo RentalRepository,
	sessionRepo SessionRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	bookingMetrics BookingMetrics,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilityRepo:   facilityRepo,
		rentalRepo:     rentalRepo,
		sessionRepo:    sessionRepo,
		identityClient: identityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		metrics:        bookingMetrics,
		policy:         policy,
		logger:         logger,
	}
}

// Execute выполняет use case создания аренды.
// Скан конфликтов и вставка выполняются в одной сериализуемой транзакции
// с блокировкой строк площадки, чтобы две параллельные аренды на
// пересекающиеся интервалы не прошли обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRental: customer=%d, facility=%d, start=%s, end=%s",
		req.CustomerID, req.FacilityID,
		req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndTime.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRental: validation failed: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что начало аренды не в прошлом
	if err := validateNotInPast(req.StartTime, now); err != nil {
		uc.logger.Warn("CreateRental: start time in the past: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return nil, err
	}

	// 4. Получаем данные пользователя (graceful degradation при недоступности)
	var customerName *string
	customer, err := uc.identityClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, identityClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateRental: customer id=%d not found", req.CustomerID)
			uc.metrics.ObserveBooking(metrics.OutcomeRejected)
			return nil, ErrCustomerNotFound
		}
		// Сервис недоступен: создаем аренду без денормализованного имени
		uc.logger.Warn("CreateRental: proceeding without customer name: %v", err)
	} else {
		customerName = &customer.Name
	}

	var result *domain.FacilityRental

	// 5. Выполняем проверки и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем площадку
		facility, err := uc.facilityRepo.GetByID(txCtx, req.FacilityID)
		if err != nil {
			uc.logger.Warn("CreateRental: facility id=%d not found: %v", req.FacilityID, err)
			return ErrFacilityNotFound
		}

		// 5.2. Площадка должна быть открыта для бронирования
		if !facility.Bookable {
			uc.logger.Warn("CreateRental: facility id=%d is not bookable", req.FacilityID)
			return ErrFacilityNotBookable
		}

		// 5.3. Часы работы площадки
		if err := validateOperatingHours(facility, req.StartTime, req.EndTime,
			uc.policy.DefaultOpenTime, uc.policy.DefaultCloseTime); err != nil {
			uc.logger.Warn("CreateRental: operating hours check failed: %v", err)
			return err
		}

		// 5.4. Длительность против политики площадки
		if err := validateDuration(facility, req.StartTime, req.EndTime); err != nil {
			uc.logger.Warn("CreateRental: duration check failed: %v", err)
			return err
		}

		candidate := conflict.Candidate{Start: req.StartTime, End: req.EndTime}

		// 5.5. Получаем занимающие площадку аренды в интервале с блокировкой (FOR UPDATE)
		rentals, err := uc.rentalRepo.GetCountedByFacilityAndRange(txCtx,
			req.FacilityID, req.StartTime, req.EndTime, now)
		if err != nil {
			uc.logger.Error("CreateRental: failed to get rentals: %v", err)
			return fmt.Errorf("%w: failed to get rentals: %v", ErrInternal, err)
		}

		// 5.6. Получаем сессии программ на эту дату с блокировкой
		sessions, err := uc.sessionRepo.GetByFacilityAndDate(txCtx, req.FacilityID, candidate.Date())
		if err != nil {
			uc.logger.Error("CreateRental: failed to get sessions: %v", err)
			return fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
		}

		// 5.7. Проверяем пересечения
		if clash := conflict.Check(facility, candidate, rentals, sessions, now); clash != nil {
			uc.logger.Warn("CreateRental: conflict with %s id=%d", clash.Kind, clash.ID)
			return fmt.Errorf("%w: %s id=%d", ErrTimeConflict, clash.Kind, clash.ID)
		}

		// 5.8. Создаем pending аренду с холдом
		holdExpiresAt := now.Add(uc.policy.HoldDuration())
		rental := &domain.FacilityRental{
			Reference:     uuid.NewString(),
			FacilityID:    req.FacilityID,
			CustomerID:    req.CustomerID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        domain.StatusPending,
			HoldExpiresAt: &holdExpiresAt,
			CustomerName:  customerName,
		}

		created, err := uc.rentalRepo.Create(txCtx, rental)
		if err != nil {
			uc.logger.Error("CreateRental: failed to create rental: %v", err)
			return fmt.Errorf("%w: failed to create rental: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.metrics.ObserveBooking(outcomeForError(err))
		return nil, err
	}

	uc.metrics.ObserveBooking(metrics.OutcomeAccepted)
	uc.logger.Info("CreateRental: successfully created rental id=%d reference=%s", result.ID, result.Reference)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		FacilityID:      result.FacilityID,
		CustomerID:      result.CustomerID,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes(),
		Status:          string(result.Status),
		HoldExpiresAt:   result.HoldExpiresAt,
		CustomerName:    result.CustomerName,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// outcomeForError сопоставляет ошибку бронирования с меткой метрики
func outcomeForError(err error) string {
	switch {
	case errors.Is(err, ErrTimeConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, ErrDurationOutOfBounds):
		return metrics.OutcomeDurationInvalid
	default:
		return metrics.OutcomeRejected
	}
}
