package create_program

import (
	"context"

	createProgram "github.com/heyfarai/simplyteams/internal/usecase/create_program"
)

type CreateProgramUseCase interface {
	Execute(ctx context.Context, req *createProgram.Request) (*createProgram.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
