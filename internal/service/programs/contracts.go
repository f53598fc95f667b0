package programs

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/domain"
)

// ProgramRepository интерфейс репозитория программ
type ProgramRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Program, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Program, error)
}

// SessionRepository интерфейс репозитория сессий программ
type SessionRepository interface {
	GetByProgramID(ctx context.Context, programID int64) ([]*domain.Session, error)
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
