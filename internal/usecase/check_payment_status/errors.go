package check_payment_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_payment_status: invalid input data")

	// ErrAppointmentNotFound запись не найдена
	ErrAppointmentNotFound = errors.New("check_payment_status: appointment not found")

	// ErrPaymentUnavailable платёжная система не ответила или ответила ошибкой
	ErrPaymentUnavailable = errors.New("check_payment_status: payment provider unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_payment_status: internal error")
)
