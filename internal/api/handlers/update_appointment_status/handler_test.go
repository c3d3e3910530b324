package update_appointment_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerbarber/appointment-service/internal/service/appointments"
	"github.com/tigerbarber/appointment-service/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	updateStatusFn func(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error)
}

func (f *fakeService) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error) {
	return f.updateStatusFn(ctx, id, rawStatus)
}

func patch(t *testing.T, h *Handler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/appointment/"+id+"/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_UpdatesStatus(t *testing.T) {
	h := NewHandler(&fakeService{
		updateStatusFn: func(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error) {
			assert.Equal(t, int64(5), id)
			assert.Equal(t, "APPROVED", rawStatus)
			return &models.StatusUpdateResponse{ID: id, Status: "approved"}, nil
		},
	}, nopLogger{})

	rec := patch(t, h, "5", `{"status":"APPROVED"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data models.StatusUpdateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.Data.ID)
	assert.Equal(t, "approved", body.Data.Status)
}

func TestHandle_MissingStatus(t *testing.T) {
	h := NewHandler(&fakeService{
		updateStatusFn: func(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error) {
			return nil, appointments.ErrMissingStatus
		},
	}, nopLogger{})

	rec := patch(t, h, "5", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status is required")
}

func TestHandle_InvalidStatus(t *testing.T) {
	h := NewHandler(&fakeService{
		updateStatusFn: func(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error) {
			return nil, appointments.ErrInvalidStatus
		},
	}, nopLogger{})

	rec := patch(t, h, "5", `{"status":"cancelled"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid status value")
}

func TestHandle_AppointmentNotFound(t *testing.T) {
	h := NewHandler(&fakeService{
		updateStatusFn: func(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error) {
			return nil, appointments.ErrAppointmentNotFound
		},
	}, nopLogger{})

	rec := patch(t, h, "404", `{"status":"approved"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Appointment not found")
}

func TestHandle_ApprovalConflict(t *testing.T) {
	h := NewHandler(&fakeService{
		updateStatusFn: func(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error) {
			return nil, appointments.ErrTimeSlotTaken
		},
	}, nopLogger{})

	rec := patch(t, h, "5", `{"status":"approved"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already booked")
}

func TestHandle_InvalidID(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	rec := patch(t, h, "abc", `{"status":"approved"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_StoreErrorIsServerError(t *testing.T) {
	h := NewHandler(&fakeService{
		updateStatusFn: func(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error) {
			return nil, appointments.ErrInternal
		},
	}, nopLogger{})

	rec := patch(t, h, "5", `{"status":"approved"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error")
}
