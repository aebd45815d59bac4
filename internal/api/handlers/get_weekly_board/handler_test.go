package get_weekly_board

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SalonBookingService/pkg/logger"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

type fakeService struct {
	got *models.WeeklyRequest
	err error
}

func (f *fakeService) WeeklyBoard(_ context.Context, req *models.WeeklyRequest) (*models.WeeklyBoardResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.WeeklyBoardResponse{Days: []models.DayBoard{}}, nil
}

func get(svc *fakeService, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &fakeService{}

	rec := get(svc, "/appointments/weekly?date=2026-10-22&master_id=3&service_id=5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.NewDate(2026, 10, 22), svc.got.Date)
	require.NotNil(t, svc.got.MasterID)
	assert.Equal(t, int64(3), *svc.got.MasterID)
	require.NotNil(t, svc.got.ServiceID)
	assert.Equal(t, int64(5), *svc.got.ServiceID)
}

func TestHandle_FiltersAreOptional(t *testing.T) {
	svc := &fakeService{}

	rec := get(svc, "/appointments/weekly?date=2026-10-22")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.MasterID)
	assert.Nil(t, svc.got.ServiceID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		err      error
		wantCode int
	}{
		{"no date", "/appointments/weekly", nil, http.StatusBadRequest},
		{"bad master", "/appointments/weekly?date=2026-10-22&master_id=x", nil, http.StatusBadRequest},
		{"bad service", "/appointments/weekly?date=2026-10-22&service_id=-1", nil, http.StatusBadRequest},
		{"internal", "/appointments/weekly?date=2026-10-22", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(&fakeService{err: tt.err}, tt.url)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
