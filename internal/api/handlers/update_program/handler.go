package update_program

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/heyfarai/simplyteams/internal/api/handlers"
	updateProgram "github.com/heyfarai/simplyteams/internal/usecase/update_program"
)

const (
	msgInvalidProgramID   = "некорректный ID программы"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные программы"
	msgInvalidRecurrence  = "некорректные параметры повторения"
	msgProgramNotFound    = "программа не найдена"
	msgFacilityNotFound   = "площадка не найдена"
)

type Handler struct {
	useCase UpdateProgramUseCase
	logger  Logger
}

func NewHandler(useCase UpdateProgramUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/programs/{programId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	programID, err := strconv.ParseInt(vars["programId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /programs/{id} - Invalid program ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProgramID)
		return
	}

	var req UpdateProgramRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /programs/{id} - Invalid request body: program_id=%d, error=%v", programID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(programID)
	if err != nil {
		h.logger.Warn("PUT /programs/{id} - Failed to parse request: program_id=%d, error=%v", programID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateProgram.ErrProgramNotFound):
			h.logger.Warn("PUT /programs/{id} - Program not found: program_id=%d", programID)
			handlers.RespondNotFound(w, msgProgramNotFound)

		case errors.Is(err, updateProgram.ErrFacilityNotFound):
			h.logger.Warn("PUT /programs/{id} - Facility not found: program_id=%d, error=%v", programID, err)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, updateProgram.ErrInvalidRecurrence):
			h.logger.Warn("PUT /programs/{id} - Invalid recurrence: program_id=%d, error=%v", programID, err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, updateProgram.ErrInvalidInput):
			h.logger.Warn("PUT /programs/{id} - Invalid input: program_id=%d, error=%v", programID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /programs/{id} - Failed to update program: program_id=%d, error=%v", programID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /programs/{id} - Program updated: program_id=%d, deleted=%d, created=%d",
		programID, result.SessionsDeleted, result.SessionsCreated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
