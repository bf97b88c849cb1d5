package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/andrewscodinglab/salon-booking-service/internal/api/handlers"
	getAvailableSlots "github.com/andrewscodinglab/salon-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidStylistID    = "invalid stylist ID"
	msgMissingDate         = "date is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgMissingDuration     = "durationMinutes is required"
	msgInvalidDuration     = "invalid durationMinutes"
	msgScheduleUnavailable = "stylist schedule is not configured"
	msgInvalidScheduleTime = "stylist schedule contains an invalid time"
	msgInvalidSlotsRequest = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/available-slots
// Query params: date (required, YYYY-MM-DD), durationMinutes (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stylists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationStr := r.URL.Query().Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET /stylists/{id}/available-slots - Missing durationMinutes")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid durationMinutes: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(stylistID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrScheduleUnavailable):
			h.logger.Warn("GET /stylists/{id}/available-slots - Schedule unavailable: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgScheduleUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidTimeFormat):
			h.logger.Error("GET /stylists/{id}/available-slots - Invalid time in stored schedule: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidScheduleTime)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid input: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotsRequest)

		default:
			h.logger.Error("GET /stylists/{id}/available-slots - Failed to get slots: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stylists/{id}/available-slots - Slots retrieved: stylist_id=%d, date=%s, slots_count=%d",
		stylistID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
