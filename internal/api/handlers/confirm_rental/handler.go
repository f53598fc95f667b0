package confirm_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/heyfarai/simplyteams/internal/api/handlers"
	"github.com/heyfarai/simplyteams/internal/api/middleware"
	"github.com/heyfarai/simplyteams/internal/service/rentals"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgInvalidRentalID = "некорректный ID аренды"
	msgRentalNotFound  = "аренда не найдена"
	msgAccessDenied    = "доступ запрещен"
	msgHoldExpired     = "срок холда истек"
	msgCannotConfirm   = "аренду нельзя подтвердить в текущем статусе"
)

type Handler struct {
	service RentalsService
	logger  Logger
}

func NewHandler(service RentalsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rentals/{rentalId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /rentals/{id}/confirm - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rentals/{id}/confirm - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	result, err := h.service.Confirm(r.Context(), rentalID, customerID)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("PATCH /rentals/{id}/confirm - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)

		case errors.Is(err, rentals.ErrAccessDenied):
			h.logger.Warn("PATCH /rentals/{id}/confirm - Access denied: rental_id=%d, customer_id=%d",
				rentalID, customerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rentals.ErrHoldExpired):
			h.logger.Warn("PATCH /rentals/{id}/confirm - Hold expired: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgHoldExpired)

		case errors.Is(err, rentals.ErrCannotConfirm):
			h.logger.Warn("PATCH /rentals/{id}/confirm - Cannot confirm: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondBadRequest(w, msgCannotConfirm)

		default:
			h.logger.Error("PATCH /rentals/{id}/confirm - Failed to confirm rental: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rentals/{id}/confirm - Rental confirmed: rental_id=%d, customer_id=%d",
		rentalID, customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
