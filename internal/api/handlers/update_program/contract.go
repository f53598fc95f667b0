package update_program

import (
	"context"

	updateProgram "github.com/heyfarai/simplyteams/internal/usecase/update_program"
)

type UpdateProgramUseCase interface {
	Execute(ctx context.Context, req *updateProgram.Request) (*updateProgram.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
