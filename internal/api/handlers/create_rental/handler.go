package create_rental

import (
	"errors"
	"net/http"

	"github.com/heyfarai/simplyteams/internal/api/handlers"
	"github.com/heyfarai/simplyteams/internal/api/middleware"
	createRental "github.com/heyfarai/simplyteams/internal/usecase/create_rental"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные аренды"
	msgFacilityNotFound   = "площадка не найдена"
	msgCustomerNotFound   = "пользователь не найден"
	msgNotBookable        = "площадка недоступна для аренды"
	msgOutsideHours       = "время вне часов работы площадки"
	msgDurationInvalid    = "недопустимая длительность аренды"
	msgStartInPast        = "время начала уже прошло"
	msgTimeConflict       = "время уже занято"
)

type Handler struct {
	useCase CreateRentalUseCase
	logger  Logger
}

func NewHandler(useCase CreateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /rentals - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals - Invalid request body: customer_id=%d, error=%v", customerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /rentals - Failed to parse request: customer_id=%d, error=%v", customerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRental.ErrTimeConflict):
			h.logger.Warn("POST /rentals - Time conflict: customer_id=%d, facility_id=%d, error=%v",
				customerID, req.FacilityID, err)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, createRental.ErrFacilityNotFound):
			h.logger.Warn("POST /rentals - Facility not found: customer_id=%d, facility_id=%d",
				customerID, req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createRental.ErrCustomerNotFound):
			h.logger.Warn("POST /rentals - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createRental.ErrFacilityNotBookable):
			h.logger.Warn("POST /rentals - Facility not bookable: facility_id=%d", req.FacilityID)
			handlers.RespondBadRequest(w, msgNotBookable)

		case errors.Is(err, createRental.ErrOutsideOperatingHours):
			h.logger.Warn("POST /rentals - Outside operating hours: facility_id=%d, error=%v", req.FacilityID, err)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createRental.ErrDurationOutOfBounds):
			h.logger.Warn("POST /rentals - Duration out of bounds: facility_id=%d, error=%v", req.FacilityID, err)
			handlers.RespondBadRequest(w, msgDurationInvalid)

		case errors.Is(err, createRental.ErrStartInPast):
			h.logger.Warn("POST /rentals - Start in past: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rentals - Failed to create rental: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals - Rental created: rental_id=%d, customer_id=%d, facility_id=%d",
		result.ID, customerID, result.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
