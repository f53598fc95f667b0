package update_program

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/domain"
)

// ProgramRepository интерфейс репозитория программ
type ProgramRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
}

// SessionRepository интерфейс репозитория сессий программ
type SessionRepository interface {
	BatchCreate(ctx context.Context, sessions []domain.Session) error
	DeleteByProgramID(ctx context.Context, programID int64) (int64, error)
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
