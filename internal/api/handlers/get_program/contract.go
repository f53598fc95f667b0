package get_program

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/service/programs/models"
)

type ProgramsService interface {
	GetByID(ctx context.Context, id int64) (*models.ProgramResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
