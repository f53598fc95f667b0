package add_session

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/service/programs/models"
)

type ProgramsService interface {
	AddSession(ctx context.Context, programID int64, req *models.AddSessionRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
