package cancel_appointment

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/andrewscodinglab/salon-booking-service/internal/api/handlers"
	"github.com/andrewscodinglab/salon-booking-service/internal/api/middleware"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentUID = "invalid appointment UID"
	msgInvalidRequestBody    = "invalid request body"
	msgNotFound              = "appointment not found"
	msgMissingUserID         = "missing user ID"
	msgForbidden             = "access denied"
	msgCannotCancel          = "appointment cannot be cancelled"
	msgInvalidInput          = "invalid cancellation data"
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

// Handle PATCH /api/v1/appointments/{appointmentUid}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	uid, err := uuid.Parse(vars["appointmentUid"])
	if err != nil {
		h.logger.Warn("PATCH /appointments/{uid}/cancel - Invalid appointment UID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentUID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{uid}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// The body is optional, a cancellation without a reason is fine.
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /appointments/{uid}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CancelAppointmentRequest{
		UID:    uid,
		UserID: userID,
		Reason: req.Reason,
	}

	appointment, err := h.service.Cancel(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{uid}/cancel - Appointment not found: appointment_uid=%s", uid)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{uid}/cancel - Access denied: appointment_uid=%s, user_id=%d", uid, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{uid}/cancel - Cannot cancel: appointment_uid=%s", uid)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{uid}/cancel - Invalid input: appointment_uid=%s, error=%v", uid, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{uid}/cancel - Failed to cancel: appointment_uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{uid}/cancel - Appointment cancelled: appointment_uid=%s, user_id=%d", uid, userID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
