package freedompay

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("freedompay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от платёжной системы
	ErrInvalidResponse = errors.New("freedompay client: invalid response")

	// ErrPaymentRejected платёжная система вернула pg_status=error
	ErrPaymentRejected = errors.New("freedompay client: payment rejected")

	// ErrInvalidAmount сумма платежа должна быть положительной
	ErrInvalidAmount = errors.New("freedompay client: amount must be positive")
)
