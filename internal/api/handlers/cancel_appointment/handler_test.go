package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Salon-BookingService/internal/service/appointments"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	err        error
	calledWith string
}

func (f *fakeService) Cancel(ctx context.Context, id string) error {
	f.calledWith = id
	return f.err
}

func doCancel(h *Handler, appointmentID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{appointmentId}/cancel", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+appointmentID+"/cancel", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{}
		h := NewHandler(svc, nopLogger{})

		rec := doCancel(h, "1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1", svc.calledWith)
	})

	t.Run("not found", func(t *testing.T) {
		h := NewHandler(&fakeService{err: appointments.ErrAppointmentNotFound}, nopLogger{})

		rec := doCancel(h, "missing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		h := NewHandler(&fakeService{err: appointments.ErrInternal}, nopLogger{})

		rec := doCancel(h, "1")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
