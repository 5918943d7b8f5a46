package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/memory/memorytest"
	getAvailableSlots "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

func newRouter(salon *memorytest.Salon) *mux.Router {
	uc := getAvailableSlots.NewUseCase(salon.Settings, salon.Store, salon.Loader, nil, logger.Nop()).
		WithTimeProvider(memorytest.Clock{T: memorytest.DayBefore})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/salons/{salonId}/available-slots", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ReturnsSlotsOfStaff(t *testing.T) {
	salon := memorytest.NewSalon()
	salon.Book("b-1", memorytest.Anna, memorytest.At(9, 0), memorytest.At(12, 0))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/salons/salon-1/available-slots?serviceId=haircut&date=2024-01-01&staffId=anna", nil)
	newRouter(salon).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-01-01", resp.Date)
	assert.Equal(t, string(domain.ModeChooseEmployee), resp.BookingMode)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "12:00", resp.Slots[0].StartTime)
	for _, s := range resp.Slots {
		assert.Equal(t, memorytest.Anna, s.StaffID)
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{name: "missing service", query: "date=2024-01-01&staffId=anna", status: http.StatusBadRequest},
		{name: "missing date", query: "serviceId=haircut&staffId=anna", status: http.StatusBadRequest},
		{name: "bad date", query: "serviceId=haircut&date=2024-13-01&staffId=anna", status: http.StatusBadRequest},
		{name: "unknown service", query: "serviceId=pedicure&date=2024-01-01&staffId=anna", status: http.StatusNotFound},
		{name: "staff required", query: "serviceId=haircut&date=2024-01-01", status: http.StatusBadRequest},
		{name: "unknown staff", query: "serviceId=haircut&date=2024-01-01&staffId=carl", status: http.StatusNotFound},
	}

	router := newRouter(memorytest.NewSalon())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/salons/salon-1/available-slots?"+tt.query, nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
