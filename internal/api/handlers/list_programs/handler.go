package list_programs

import (
	"net/http"

	"github.com/heyfarai/simplyteams/internal/api/handlers"
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

// Handle GET /api/v1/programs?active=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /programs - Failed to list programs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
