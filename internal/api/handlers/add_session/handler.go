package add_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/heyfarai/simplyteams/internal/api/handlers"
	"github.com/heyfarai/simplyteams/internal/service/programs"
	"github.com/heyfarai/simplyteams/internal/service/programs/models"
)

const (
	msgInvalidProgramID   = "некорректный ID программы"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные сессии"
	msgProgramNotFound    = "программа не найдена"
	msgNotCustomSessions  = "расписание программы генерируется автоматически"
)

type Handler struct {
	service ProgramsService
	logger  Logger
}

func NewHandler(service ProgramsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/programs/{programId}/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	programID, err := strconv.ParseInt(vars["programId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /programs/{id}/sessions - Invalid program ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProgramID)
		return
	}

	var req models.AddSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /programs/{id}/sessions - Invalid request body: program_id=%d, error=%v", programID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddSession(r.Context(), programID, &req)
	if err != nil {
		switch {
		case errors.Is(err, programs.ErrProgramNotFound):
			h.logger.Warn("POST /programs/{id}/sessions - Program not found: program_id=%d", programID)
			handlers.RespondNotFound(w, msgProgramNotFound)

		case errors.Is(err, programs.ErrNotCustomSessions):
			h.logger.Warn("POST /programs/{id}/sessions - Sessions are generated: program_id=%d", programID)
			handlers.RespondBadRequest(w, msgNotCustomSessions)

		case errors.Is(err, programs.ErrInvalidInput):
			h.logger.Warn("POST /programs/{id}/sessions - Invalid input: program_id=%d, error=%v", programID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /programs/{id}/sessions - Failed to add session: program_id=%d, error=%v", programID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /programs/{id}/sessions - Session created: program_id=%d, session_id=%d", programID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
