package check_availability

import (
	"context"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
)

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetCountedByFacilityAndRange(ctx context.Context, facilityID int64, start, end time.Time, now time.Time) ([]*domain.FacilityRental, error)
}

// SessionRepository интерфейс репозитория сессий программ
type SessionRepository interface {
	GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time) ([]*domain.Session, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
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
