package create_program

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/domain"
)

// ProgramRepository интерфейс репозитория программ
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (*domain.Program, error)
}

// SessionRepository интерфейс репозитория сессий программ
type SessionRepository interface {
	BatchCreate(ctx context.Context, sessions []domain.Session) error
}

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
