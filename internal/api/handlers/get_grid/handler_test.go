package get_grid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	getGrid "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_grid"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getGrid.Request) (*getGrid.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getGrid.Response), args.Error(1)
}

func newRouter(uc GetGridUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/salons/{salonId}/staff/{staffId}/grid", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodGet)
	return r
}

func get(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/v1/salons/salon-1/staff/anna/grid"+query, nil)
}

func TestHandle_CellsCarryReasons(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC) }

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getGrid.Request) bool {
		return req.SalonID == "salon-1" && req.StaffID == "anna" && req.DurationMinutes == 60
	})).Return(&getGrid.Response{
		Date:            at(0, 0),
		StaffID:         "anna",
		StepMinutes:     30,
		DurationMinutes: 60,
		Cells: []getGrid.Cell{
			{StartAt: at(12, 0), EndAt: at(13, 0), Available: true},
			{StartAt: at(12, 30), EndAt: at(13, 30), Reason: availability.ReasonInsideBreak},
		},
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, get("?date=2024-01-01&durationMinutes=60"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GridResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cells, 2)
	assert.Equal(t, "2024-01-01", resp.Date)
	assert.True(t, resp.Cells[0].Available)
	assert.Empty(t, resp.Cells[0].Reason)
	assert.Equal(t, "12:30", resp.Cells[1].StartTime)
	assert.Equal(t, "inside_break", resp.Cells[1].Reason)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "missing date", query: "", status: http.StatusBadRequest},
		{name: "bad date", query: "?date=01.01.2024", status: http.StatusBadRequest},
		{name: "bad duration", query: "?date=2024-01-01&durationMinutes=hour", status: http.StatusBadRequest},
		{name: "staff not found", query: "?date=2024-01-01", err: getGrid.ErrStaffNotFound, status: http.StatusNotFound},
		{name: "invalid input", query: "?date=2024-01-01", err: getGrid.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", query: "?date=2024-01-01", err: getGrid.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(rec, get(tt.query))

			assert.Equal(t, tt.status, rec.Code)
			if tt.err == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
