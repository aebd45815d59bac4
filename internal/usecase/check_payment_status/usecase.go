package check_payment_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/appointments"
	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
)

// Финальные успешные статусы pg_payment_status
var paidStatuses = map[string]bool{
	"success": true,
	"ok":      true,
}

// UseCase use case для проверки предоплаты записи
type UseCase struct {
	appointments AppointmentService
	payments     PaymentStatusProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointments AppointmentService, payments PaymentStatusProvider, logger Logger) *UseCase {
	return &UseCase{
		appointments: appointments,
		payments:     payments,
		logger:       logger,
	}
}

// Execute запрашивает статус платежа по записи и подтверждает её, если оплата прошла.
// Записи не в статусе pending не меняются, платёжная система для них не опрашивается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckPaymentStatus: appointment id=%d", req.AppointmentID)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	// 1. Получаем запись
	appointment, err := uc.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			uc.logger.Warn("CheckPaymentStatus: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CheckPaymentStatus: get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: get appointment: %v", ErrInternal, err)
	}

	resp := &Response{
		AppointmentID: appointment.ID,
		Confirmation:  appointment.Confirmation,
	}
	if appointment.Confirmation != string(domain.ConfirmationPending) {
		uc.logger.Info("CheckPaymentStatus: appointment id=%d is already %s", appointment.ID, appointment.Confirmation)
		return resp, nil
	}

	// 2. Статус платежа
	status, err := uc.payments.GetPaymentStatus(ctx, appointment.ID)
	if err != nil {
		uc.logger.Warn("CheckPaymentStatus: payment status of appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}
	resp.PaymentStatus = status

	if !paidStatuses[status] {
		uc.logger.Info("CheckPaymentStatus: appointment id=%d not paid yet: status=%s", appointment.ID, status)
		return resp, nil
	}

	// 3. Оплата прошла, подтверждаем запись
	result, err := uc.appointments.Confirm(ctx, &models.ConfirmationRequest{IDs: []int64{appointment.ID}})
	if err != nil {
		uc.logger.Error("CheckPaymentStatus: confirm appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: confirm: %v", ErrInternal, err)
	}
	if result.Affected > 0 {
		resp.Confirmation = string(domain.ConfirmationConfirmed)
		resp.Confirmed = true
	}

	uc.logger.Info("CheckPaymentStatus: appointment id=%d paid, confirmed=%t", appointment.ID, resp.Confirmed)
	return resp, nil
}
