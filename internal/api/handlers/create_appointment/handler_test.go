package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewscodinglab/salon-booking-service/internal/api/middleware"
	createAppointment "github.com/andrewscodinglab/salon-booking-service/internal/usecase/create_appointment"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createAppointment.Request) (*createAppointment.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newRouter(uc CreateAppointmentUseCase) *mux.Router {
	h := NewHandler(uc, noopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"stylistId":1,"clientId":42,"startDateTime":"2026-03-09T10:00","durationMinutes":60}`

func TestHandle_Created(t *testing.T) {
	uid := uuid.New()
	uc := &fakeUseCase{resp: &createAppointment.Response{
		UID:             uid,
		StylistID:       1,
		ClientID:        42,
		StartAt:         time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local),
		DurationMinutes: 60,
		Status:          "scheduled",
		CreatedAt:       time.Now(),
	}}

	rec := doRequest(t, newRouter(uc), "42", validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uid.String(), resp.AppointmentUID)
	assert.Equal(t, "2026-03-09T10:00", resp.StartDateTime)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestHandle_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"double booking is 409", createAppointment.ErrDoubleBooking, http.StatusConflict},
		{"store unavailable is 503", createAppointment.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"past start is 400", createAppointment.ErrStartTimeInPast, http.StatusBadRequest},
		{"invalid input is 400", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"unknown error is 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newRouter(&fakeUseCase{err: tt.err}), "42", validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MissingUserID(t *testing.T) {
	rec := doRequest(t, newRouter(&fakeUseCase{}), "", validBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_BookingForSomeoneElse(t *testing.T) {
	rec := doRequest(t, newRouter(&fakeUseCase{}), "7", validBody)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_BadStartFormat(t *testing.T) {
	body := `{"stylistId":1,"clientId":42,"startDateTime":"10:00am","durationMinutes":60}`
	rec := doRequest(t, newRouter(&fakeUseCase{}), "42", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	rec := doRequest(t, newRouter(&fakeUseCase{}), "42", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
