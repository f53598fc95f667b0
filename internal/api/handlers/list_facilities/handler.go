package list_facilities

import (
	"net/http"

	"github.com/heyfarai/simplyteams/internal/api/handlers"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities?bookable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookableOnly := r.URL.Query().Get("bookable") == "true"

	facilities, err := h.service.List(r.Context(), bookableOnly)
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, facilities)
}
