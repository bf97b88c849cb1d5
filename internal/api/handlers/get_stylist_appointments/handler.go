package get_stylist_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/andrewscodinglab/salon-booking-service/internal/api/handlers"
	"github.com/andrewscodinglab/salon-booking-service/internal/api/middleware"
	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments/models"
)

const (
	msgInvalidStylistID = "invalid stylist ID"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgMissingUserID    = "missing user ID"
	msgForbidden        = "access denied"
	msgInvalidStatus    = "invalid status filter"
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

// Handle GET /api/v1/stylists/{stylistId}/appointments
// Query params: date (optional, YYYY-MM-DD), status (optional),
// includeInert (optional, includes cancelled and completed)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/appointments - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /stylists/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetStylistAppointmentsRequest{
		StylistID:    stylistID,
		UserID:       userID,
		IncludeInert: r.URL.Query().Get("includeInert") == "true",
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			h.logger.Warn("GET /stylists/{id}/appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetStylistAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /stylists/{id}/appointments - Access denied: stylist_id=%d, user_id=%d", stylistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/appointments - Invalid input: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /stylists/{id}/appointments - Failed to get appointments: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/appointments - Appointments retrieved: stylist_id=%d, count=%d",
		stylistID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
