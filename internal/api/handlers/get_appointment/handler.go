package get_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/andrewscodinglab/salon-booking-service/internal/api/handlers"
	"github.com/andrewscodinglab/salon-booking-service/internal/api/middleware"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments"
)

const (
	msgInvalidAppointmentUID = "invalid appointment UID"
	msgNotFound              = "appointment not found"
	msgMissingUserID         = "missing user ID"
	msgForbidden             = "access denied"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentUid}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	uid, err := uuid.Parse(vars["appointmentUid"])
	if err != nil {
		h.logger.Warn("GET /appointments/{uid} - Invalid appointment UID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentUID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{uid} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	appointment, err := h.service.GetByUID(r.Context(), uid, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{uid} - Appointment not found: appointment_uid=%s", uid)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{uid} - Access denied: appointment_uid=%s, user_id=%d", uid, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments/{uid} - Failed to get appointment: appointment_uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{uid} - Appointment retrieved: appointment_uid=%s, user_id=%d", uid, userID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
