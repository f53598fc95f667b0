package rentals

import (
	"context"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
)

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.FacilityRental, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.RentalStatus) ([]*domain.FacilityRental, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error
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
