package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeUseCase) Popular(ctx context.Context) []types.TimeString {
	return []types.TimeString{"10:00", "14:00", "16:00"}
}

func TestHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{
			resp: &getAvailableSlots.Response{
				Date:  "2025-05-01",
				Slots: []types.TimeString{"09:00", "11:00"},
			},
		}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2025-05-01", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AvailableSlotsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "2025-05-01", resp.Date)
		assert.Equal(t, []string{"09:00", "11:00"}, resp.Slots)
	})

	t.Run("missing date", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrInvalidDate}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=01.05.2025", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrInternal}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2025-05-01", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_HandlePopular(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/popular-slots", nil)
	rec := httptest.NewRecorder()

	h.HandlePopular(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PopularSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"10:00", "14:00", "16:00"}, resp.Slots)
}
