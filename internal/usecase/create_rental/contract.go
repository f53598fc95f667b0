package create_rental

import (
	"context"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/internal/integrations/identityservice"
)

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.FacilityRental) (*domain.FacilityRental, error)
	GetCountedByFacilityAndRange(ctx context.Context, facilityID int64, start, end time.Time, now time.Time) ([]*domain.FacilityRental, error)
}

// SessionRepository интерфейс репозитория сессий программ
type SessionRepository interface {
	GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time) ([]*domain.Session, error)
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*identityservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// BookingMetrics интерфейс для записи метрик бронирования
type BookingMetrics interface {
	ObserveBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
