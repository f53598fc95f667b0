package list_programs

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/service/programs/models"
)

type ProgramsService interface {
	List(ctx context.Context, activeOnly bool) (*models.ProgramListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
