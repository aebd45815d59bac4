package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/infra/storage/memory"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	getAvailableSlots "github.com/m04kA/SalonBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SalonBookingService/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := memory.New().
		AddService(&domain.Service{ID: 1, Name: "Стрижка", DurationMinutes: 60}).
		AddService(&domain.Service{ID: 2, Name: "Маникюр", DurationMinutes: 60}).
		AddMaster(&domain.Master{ID: 1, IsActive: true, IsEmployee: true, ServiceIDs: []int64{1}}).
		AddSchedule(1, 1, "09:00", "18:00")

	generator := scheduling.NewSlotGenerator(store, store, domain.DefaultSchedulingConfig(), time.UTC)
	uc := getAvailableSlots.NewUseCase(scheduling.NewResolver(store), store, generator, nil, logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/masters/{masterId}/available-slots", NewHandler(uc, logger.Nop()).Handle)
	return r
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_WholeWorkingDay(t *testing.T) {
	// дата далеко в будущем, чтобы не зависеть от текущего времени
	rec := get(newRouter(t), "/masters/1/available-slots?service_ids=1&date=2099-01-05")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2099-01-05", body.Date)
	assert.Equal(t, 60, body.DurationMinutes)
	require.NotEmpty(t, body.Slots)
	assert.Equal(t, "09:00", body.Slots[0])
	assert.Equal(t, "17:00", body.Slots[len(body.Slots)-1])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"bad master id", "/masters/x/available-slots?service_ids=1&date=2099-01-05", http.StatusBadRequest},
		{"missing services", "/masters/1/available-slots?date=2099-01-05", http.StatusBadRequest},
		{"bad date", "/masters/1/available-slots?service_ids=1&date=05.01.2099", http.StatusBadRequest},
		{"unknown master", "/masters/9/available-slots?service_ids=1&date=2099-01-05", http.StatusNotFound},
		{"unknown service", "/masters/1/available-slots?service_ids=7&date=2099-01-05", http.StatusNotFound},
		{"not qualified", "/masters/1/available-slots?service_ids=1,2&date=2099-01-05", http.StatusUnprocessableEntity},
		{"day off", "/masters/1/available-slots?service_ids=1&date=2099-01-06", http.StatusUnprocessableEntity},
		{"past date", "/masters/1/available-slots?service_ids=1&date=2000-01-03", http.StatusUnprocessableEntity},
	}
	r := newRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, get(r, tt.url).Code)
		})
	}
}
