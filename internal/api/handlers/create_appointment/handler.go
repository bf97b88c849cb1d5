package create_appointment

import (
	"errors"
	"net/http"

	"github.com/andrewscodinglab/salon-booking-service/internal/api/handlers"
	"github.com/andrewscodinglab/salon-booking-service/internal/api/middleware"
	createAppointment "github.com/andrewscodinglab/salon-booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStart       = "invalid startDateTime, expected YYYY-MM-DDTHH:MM"
	msgMissingUserID      = "missing user ID"
	msgForbidden          = "access denied"
	msgDoubleBooking      = "the requested time slot is already booked"
	msgStartInPast        = "start time must be in the future"
	msgStoreUnavailable   = "booking is temporarily unavailable, please retry"
	msgInvalidInput       = "invalid appointment data"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Clients book for themselves only.
	if req.ClientID != userID {
		h.logger.Warn("POST /appointments - Access denied: user_id=%d, client_id=%d", userID, req.ClientID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrDoubleBooking):
			h.logger.Warn("POST /appointments - Double booking: stylist_id=%d, start=%s",
				req.StylistID, req.StartDateTime)
			handlers.RespondError(w, http.StatusConflict, msgDoubleBooking)

		case errors.Is(err, createAppointment.ErrStartTimeInPast):
			h.logger.Warn("POST /appointments - Start time in past: stylist_id=%d, start=%s",
				req.StylistID, req.StartDateTime)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createAppointment.ErrStoreUnavailable):
			h.logger.Error("POST /appointments - Store unavailable: stylist_id=%d, error=%v", req.StylistID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: stylist_id=%d, error=%v", req.StylistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: stylist_id=%d, client_id=%d, error=%v",
				req.StylistID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: appointment_uid=%s, stylist_id=%d, client_id=%d",
		result.UID, req.StylistID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
