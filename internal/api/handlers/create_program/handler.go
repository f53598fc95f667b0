package create_program

import (
	"errors"
	"net/http"

	"github.com/heyfarai/simplyteams/internal/api/handlers"
	createProgram "github.com/heyfarai/simplyteams/internal/usecase/create_program"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные программы"
	msgInvalidRecurrence  = "некорректные параметры повторения"
	msgFacilityNotFound   = "площадка не найдена"
)

type Handler struct {
	useCase CreateProgramUseCase
	logger  Logger
}

func NewHandler(useCase CreateProgramUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/programs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateProgramRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /programs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /programs - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createProgram.ErrFacilityNotFound):
			h.logger.Warn("POST /programs - Facility not found: %v", err)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createProgram.ErrInvalidRecurrence):
			h.logger.Warn("POST /programs - Invalid recurrence: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, createProgram.ErrInvalidInput):
			h.logger.Warn("POST /programs - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /programs - Failed to create program: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /programs - Program created successfully: program_id=%d, sessions=%d",
		result.Program.ID, result.SessionsCreated)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
