package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	createAppointment "github.com/m04kA/SalonBookingService/internal/usecase/create_appointment"
	"github.com/m04kA/SalonBookingService/pkg/logger"
)

type fakeUseCase struct {
	got  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body)))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandle_Created(t *testing.T) {
	at := time.Date(2026, time.October, 19, 7, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:              7,
		ClientName:      "Мария",
		Phone:           "+79990000000",
		MasterID:        1,
		MasterName:      "Анна Петрова",
		ServiceIDs:      []int64{1},
		DateTime:        &at,
		DurationMinutes: 30,
		TotalPrice:      500,
		Confirmation:    domain.ConfirmationPending,
		ReminderMinutes: 60,
		CreatedAt:       at,
	}}
	moscow := time.FixedZone("MSK", 3*60*60)
	h := NewHandler(uc, moscow, logger.Nop())

	rec := post(h, `{"clientName":"Мария","phone":"+79990000000","serviceIds":[1],"masterId":1,"dateTime":"2026-10-19T10:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	// время без смещения трактуется в поясе салона
	require.NotNil(t, uc.got.DateTime)
	assert.True(t, uc.got.DateTime.Equal(at))

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "pending", body.Confirmation)
	assert.Nil(t, body.Date)
}

func TestHandle_DateOnly(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{ID: 1, CreatedAt: time.Now()}}
	h := NewHandler(uc, time.UTC, logger.Nop())

	rec := post(h, `{"phone":"1","serviceIds":[3],"masterId":1,"date":"2026-10-19"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got.Date)
	assert.Equal(t, "2026-10-19", uc.got.Date.String())
	assert.Nil(t, uc.got.DateTime)
}

func TestHandle_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"unknown field", `{"master":1}`},
		{"bad dateTime", `{"serviceIds":[1],"masterId":1,"dateTime":"19.10.2026 10:00"}`},
		{"bad date", `{"serviceIds":[1],"masterId":1,"date":"2026/10/19"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := post(NewHandler(uc, time.UTC, logger.Nop()), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		rule   string
		retry  bool
	}{
		{
			name:   "overlap",
			err:    &scheduling.ValidationError{Rule: scheduling.RuleNoOverlap, Reason: "занято", Err: scheduling.ErrScheduleConflict},
			status: http.StatusConflict,
			rule:   scheduling.RuleNoOverlap,
		},
		{
			name:   "outside hours",
			err:    &scheduling.ValidationError{Rule: scheduling.RuleWithinHours, Reason: "вне графика", Err: scheduling.ErrScheduleConflict},
			status: http.StatusUnprocessableEntity,
			rule:   scheduling.RuleWithinHours,
		},
		{
			name:   "lost race",
			err:    fmt.Errorf("%w: tx: serialization", createAppointment.ErrConcurrencyConflict),
			status: http.StatusConflict,
			retry:  true,
		},
		{name: "invalid", err: fmt.Errorf("%w: empty services", createAppointment.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("%w: master 9", scheduling.ErrNotFound), status: http.StatusNotFound},
		{name: "not qualified", err: scheduling.ErrQualification, status: http.StatusUnprocessableEntity},
		{name: "internal", err: createAppointment.ErrInternal, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, time.UTC, logger.Nop())

			rec := post(h, `{"phone":"1","serviceIds":[1],"masterId":1,"dateTime":"2026-10-19T10:00:00Z"}`)

			require.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.rule, body.Rule)
			assert.Equal(t, tt.retry, body.RetrySlotSearch)
		})
	}
}
