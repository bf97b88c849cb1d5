package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/andrewscodinglab/salon-booking-service/internal/api/handlers"
	"github.com/andrewscodinglab/salon-booking-service/internal/api/middleware"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/schedule"
)

const (
	msgInvalidStylistID   = "invalid stylist ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidException   = "invalid exception date, expected YYYY-MM-DD"
	msgMissingUserID      = "missing user ID"
	msgForbidden          = "access denied"
	msgInvalidTimeFormat  = "schedule contains an invalid time"
	msgInvalidSchedule    = "invalid schedule data"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/stylists/{stylistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stylists/{id}/schedule - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /stylists/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stylists/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(stylistID, userID)
	if err != nil {
		h.logger.Warn("PUT /stylists/{id}/schedule - Invalid exception date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidException)
		return
	}

	result, err := h.service.ReplaceStylistSchedule(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /stylists/{id}/schedule - Access denied: stylist_id=%d, user_id=%d", stylistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidTimeFormat):
			h.logger.Warn("PUT /stylists/{id}/schedule - Invalid time format: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTimeFormat)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /stylists/{id}/schedule - Invalid schedule: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /stylists/{id}/schedule - Failed to replace schedule: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stylists/{id}/schedule - Schedule replaced: stylist_id=%d", stylistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
