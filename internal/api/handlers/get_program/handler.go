package get_program

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/heyfarai/simplyteams/internal/api/handlers"
	"github.com/heyfarai/simplyteams/internal/service/programs"
)

const (
	msgInvalidProgramID = "некорректный ID программы"
	msgProgramNotFound  = "программа не найдена"
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

// Handle GET /api/v1/programs/{programId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	programID, err := strconv.ParseInt(vars["programId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /programs/{id} - Invalid program ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProgramID)
		return
	}

	result, err := h.service.GetByID(r.Context(), programID)
	if err != nil {
		switch {
		case errors.Is(err, programs.ErrProgramNotFound):
			h.logger.Warn("GET /programs/{id} - Program not found: program_id=%d", programID)
			handlers.RespondNotFound(w, msgProgramNotFound)

		default:
			h.logger.Error("GET /programs/{id} - Failed to get program: program_id=%d, error=%v", programID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
