package check_payment_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/integrations/freedompay"
	"github.com/m04kA/SalonBookingService/internal/service/appointments"
	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SalonBookingService/pkg/logger"
)

type fakeAppointments struct {
	confirmation string
	getErr       error
	confirmErr   error
	confirmed    [][]int64
}

func (f *fakeAppointments) GetByID(_ context.Context, id int64) (*models.AppointmentResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.AppointmentResponse{ID: id, Confirmation: f.confirmation}, nil
}

func (f *fakeAppointments) Confirm(_ context.Context, req *models.ConfirmationRequest) (*models.ConfirmationResponse, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	f.confirmed = append(f.confirmed, req.IDs)
	f.confirmation = "confirmed"
	return &models.ConfirmationResponse{Affected: int64(len(req.IDs))}, nil
}

type fakePayments struct {
	status string
	err    error
	calls  int
}

func (p *fakePayments) GetPaymentStatus(context.Context, int64) (string, error) {
	p.calls++
	return p.status, p.err
}

func TestExecute_PaidAppointmentIsConfirmed(t *testing.T) {
	for _, status := range []string{"success", "ok"} {
		t.Run(status, func(t *testing.T) {
			appts := &fakeAppointments{confirmation: "pending"}
			uc := NewUseCase(appts, &fakePayments{status: status}, logger.Nop())

			resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})

			require.NoError(t, err)
			assert.True(t, resp.Confirmed)
			assert.Equal(t, "confirmed", resp.Confirmation)
			assert.Equal(t, status, resp.PaymentStatus)
			assert.Equal(t, [][]int64{{42}}, appts.confirmed)
		})
	}
}

func TestExecute_NotPaidYet(t *testing.T) {
	for _, status := range []string{"pending", "failed", "error"} {
		t.Run(status, func(t *testing.T) {
			appts := &fakeAppointments{confirmation: "pending"}
			uc := NewUseCase(appts, &fakePayments{status: status}, logger.Nop())

			resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})

			require.NoError(t, err)
			assert.False(t, resp.Confirmed)
			assert.Equal(t, "pending", resp.Confirmation)
			assert.Empty(t, appts.confirmed)
		})
	}
}

func TestExecute_ProcessedAppointmentIsNotPolled(t *testing.T) {
	payments := &fakePayments{status: "success"}
	uc := NewUseCase(&fakeAppointments{confirmation: "rejected"}, payments, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})

	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Confirmation)
	assert.Empty(t, resp.PaymentStatus)
	assert.Zero(t, payments.calls)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		appts    *fakeAppointments
		payments *fakePayments
		wantErr  error
	}{
		{"bad id", 0, &fakeAppointments{}, &fakePayments{}, ErrInvalidInput},
		{"not found", 1, &fakeAppointments{getErr: appointments.ErrAppointmentNotFound}, &fakePayments{}, ErrAppointmentNotFound},
		{"repository down", 1, &fakeAppointments{getErr: appointments.ErrInternal}, &fakePayments{}, ErrInternal},
		{"provider down", 1, &fakeAppointments{confirmation: "pending"}, &fakePayments{err: freedompay.ErrInvalidResponse}, ErrPaymentUnavailable},
		{"confirm fails", 1, &fakeAppointments{confirmation: "pending", confirmErr: errors.New("db")}, &fakePayments{status: "success"}, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.appts, tt.payments, logger.Nop())

			_, err := uc.Execute(context.Background(), &Request{AppointmentID: tt.id})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_WithFreedomPayClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_status3.php", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "42", r.PostForm.Get("pg_order_id"))
		assert.NotEmpty(t, r.PostForm.Get("pg_sig"))
		_, _ = w.Write([]byte(`<response><pg_status>ok</pg_status><pg_payment_status>success</pg_payment_status></response>`))
	}))
	t.Cleanup(srv.Close)

	client := freedompay.NewClient(freedompay.Config{
		BaseURL:    srv.URL,
		MerchantID: "552170",
		SecretKey:  "s3cr3t",
		Timeout:    time.Second,
	}, logger.Nop())
	appts := &fakeAppointments{confirmation: "pending"}

	resp, err := NewUseCase(appts, client, logger.Nop()).Execute(context.Background(), &Request{AppointmentID: 42})

	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
	assert.Equal(t, [][]int64{{42}}, appts.confirmed)
}
